// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/katalvlaran/precisiongraph/core"
	"github.com/stretchr/testify/require"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe
// and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	errs := make(chan error, num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentDuplicateEdge races the same pair from both orientations;
// exactly one insertion must win.
func TestConcurrentDuplicateEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 64
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			from, to := "A", "B"
			if i%2 == 1 {
				from, to = to, from
			}
			if _, err := g.AddEdge(from, to, 1); err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, won)
	require.Equal(t, 1, g.EdgeCount())
}

// TestConcurrentReads validates concurrent readers against a writer.
func TestConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_, _ = g.AddEdge("hub", fmt.Sprintf("v%03d", i), 0.5)
		}
	}()
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_ = g.Edges()
			_, _ = g.Degree("hub")
			_ = g.HasEdge("hub", "v001")
		}()
	}
	wg.Wait()

	require.Equal(t, 100, g.EdgeCount())
}
