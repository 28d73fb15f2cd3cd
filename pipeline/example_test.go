// SPDX-License-Identifier: MIT
package pipeline_test

import (
	"fmt"

	"github.com/katalvlaran/precisiongraph/internal/fixture"
	"github.com/katalvlaran/precisiongraph/pipeline"
)

// ExamplePipeline_Recompute keeps the one strong conditional dependence of a
// three-asset market: A and B move together, C is nearly independent.
func ExamplePipeline_Recompute() {
	X, _ := fixture.ReturnsWithCovariance(fixture.ScenarioCovariance)
	p, err := pipeline.New(X, []string{"A", "B", "C"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := p.Recompute(0.3, 0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range res.Edges {
		fmt.Printf("%s-%s\n", e.From, e.To)
	}
	// Output:
	// A-B
}
