// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package art

import "errors"

// ErrOutOfRange is returned when a child cursor is dereferenced at the
// past-the-end or before-the-beginning position.
var ErrOutOfRange = errors.New("art: child iterator out of range")
