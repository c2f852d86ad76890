// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command civil does calendar arithmetic on civil times.
package main

import "gonih.org/civil/internal/cli"

func main() {
	cli.Execute()
}
