//go:build ignore

// Command conformance-summary runs the rdftest conformance suite of every
// backend and prints a pass/fail table.
//
//	go run scripts/conformance-summary.go
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func main() {
	backends := []string{"simple", "indexed", "jsonld"}
	if len(os.Args) > 1 {
		backends = os.Args[1:]
	}

	fmt.Println("Backend Conformance Summary")
	fmt.Println(strings.Repeat("=", 61))

	totalPass, totalFail := 0, 0
	for _, backend := range backends {
		cmd := exec.Command("go", "test", "./rdf/"+backend, "-run", "TestConformance", "-v", "-count=1")
		output, _ := cmd.CombinedOutput()
		out := string(output)
		// Subtests only; the parent TestConformance line is not counted.
		pass := strings.Count(out, "--- PASS: TestConformance/")
		fail := strings.Count(out, "--- FAIL: TestConformance/")
		totalPass += pass
		totalFail += fail

		fmt.Printf("%-10s: PASS=%3d  FAIL=%3d  Pass Rate=%s\n", backend, pass, fail, rate(pass, fail))
	}

	fmt.Println(strings.Repeat("=", 61))
	fmt.Printf("%-10s: PASS=%3d  FAIL=%3d  Pass Rate=%s\n", "TOTAL", totalPass, totalFail, rate(totalPass, totalFail))
	if totalFail > 0 {
		os.Exit(1)
	}
}

func rate(pass, fail int) string {
	if pass+fail == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(pass)/float64(pass+fail))
}
