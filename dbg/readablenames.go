package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for integer handles. Debugging a mesh means staring at
// neighbor links between anonymous faces, and raw handle numbers are easy to
// transpose; giving each handle a random petname makes "which face is this
// again" tractable. Names are assigned lazily and never freed, which is fine
// for debugging sessions and nothing else.

var memo map[int]string

func init() {
	memo = make(map[int]string)
	// Names are handed out in order of demand, so we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same face between runs.
	petname.NonDeterministicMode()
}

// Name returns a readable name for a handle, stable within this run.
func Name(handle int) string {
	if r, ok := memo[handle]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[handle] = r
	return r
}
