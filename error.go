// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package loop

import "errors"

// ErrNoResult is returned by Switch when neither a case nor a default branch
// produced a result. With a non-nil default branch it cannot occur.
var ErrNoResult = errors.New("loop: switch produced no result")

// Panics raised by caller-supplied predicates, bodies, increments, handlers
// and default branches are not recovered; they reach the combinator's caller
// unchanged.
