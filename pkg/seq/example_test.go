// 20 April 2020

package seq_test

import (
	"fmt"
	"log"
	"os"

	. "github.com/andrew-torda/rvdbacc/pkg/seq"
	. "github.com/andrew-torda/rvdbacc/pkg/seq/common"
)

var set1 = `>acc|GENBANK|MH171300.1|Marine virus AFVG_250M1064, complete genome
acgtacgt
>acc|REFSEQ|NC_001422.1|Escherichia phage phiX174, complete genome
gagttttatc gcttccatga
`

func ExampleVisit() {
	f_tmp, err := WrtTemp(set1)
	if err != nil {
		log.Fatal("writing testseq")
	}
	defer os.Remove(f_tmp)
	n, err := Visit(f_tmp, &Options{KeepSeq: true}, func(s Seq) error {
		fmt.Println(s.ID(), s.Len())
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(n, "seqs")
	// Output:
	// acc|GENBANK|MH171300.1|Marine 8
	// acc|REFSEQ|NC_001422.1|Escherichia 20
	// 2 seqs
}
