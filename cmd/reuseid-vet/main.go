// Command reuseid-vet runs the reuseid analyzer standalone or as a vet tool:
//
//	go vet -vettool=$(which reuseid-vet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/sirkon/reuseid"
)

func main() {
	singlechecker.Main(reuseid.Analyzer)
}
