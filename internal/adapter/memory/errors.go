package memory

import "fmt"

type errDuplicate string

func (e errDuplicate) Error() string {
	return fmt.Sprintf("duplicate key value %q violates unique constraint", string(e))
}
