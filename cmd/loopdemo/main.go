// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command loopdemo prints worked examples of the loop combinators.
package main

import "code.hybscloud.com/loop/internal/cli"

func main() {
	cli.Execute()
}
