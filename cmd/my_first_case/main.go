// my_first_case 同一管线延长到 50 km 的简要结果
package main

import (
	"os"

	"pipecalc/runner"
)

func main() {
	os.Exit(runner.Main(runner.LongerLine50KM(), os.Args[1:], os.Stdout, os.Stderr))
}
