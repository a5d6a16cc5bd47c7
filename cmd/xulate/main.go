// Command xulate translates UCF pin constraints between the XuLA and XuLA2
// boards (or any two boards described by a table file).
package main

import "github.com/OpenTraceLab/xulate/cmd/xulate/cmd"

func main() {
	cmd.Execute()
}
