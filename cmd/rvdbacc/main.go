// 14 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/rvdbacc/pkg/rvdbacc"
)

func main() {
	os.Exit(rvdbacc.Mymain(os.Args[1:], os.Stdout, os.Stderr))
}
