package response

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// copyFrom only fails on mismatched kinds, which is a programming error
func copyFrom(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic(fmt.Sprintf("response: copy %T into %T: %v", src, dst, err))
	}
}
