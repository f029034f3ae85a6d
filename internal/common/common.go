// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import "fmt"

// Stringer is implemented by cells with a plain text form.
type Stringer = fmt.Stringer
