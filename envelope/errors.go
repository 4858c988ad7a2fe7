// SPDX-License-Identifier: EPL-2.0

package envelope

import "errors"

var (
	ErrUnknownCurve = errors.New("unknown fade curve name")
)
