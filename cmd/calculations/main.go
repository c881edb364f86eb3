// calculations 30 km 原油管线综合分析示例
package main

import (
	"os"

	"pipecalc/runner"
)

func main() {
	os.Exit(runner.Main(runner.CrudeOilLine30KM(), os.Args[1:], os.Stdout, os.Stderr))
}
