// SPDX-License-Identifier: EPL-2.0

package export

import "errors"

var (
	ErrUnsupportedContainer = errors.New("no supported container/codec combination")
)
