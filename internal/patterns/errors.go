package patterns

import "fmt"

// ErrInvalidExtras is returned by a pattern's AssignKargs/KernelEntryPoints/GenKernel when
// the dispatch request's extras value is not that pattern's own extras type.
var ErrInvalidExtras = fmt.Errorf("patterns: extras value has the wrong type for this pattern")

// ErrInvalidScalarType is returned when a CallParams.Alpha/Beta coefficient does not hold
// the Go type this pattern's element type requires.
var ErrInvalidScalarType = fmt.Errorf("patterns: scalar coefficient has the wrong type for this pattern's element type")
