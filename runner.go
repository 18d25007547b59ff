// Copyright 2022 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"text/tabwriter"

	"zombiezen.com/go/arrayseq/arraystack"
	"zombiezen.com/go/arrayseq/deque"
	"zombiezen.com/go/arrayseq/dualdeque"
	"zombiezen.com/go/arrayseq/linkedlist"
	"zombiezen.com/go/arrayseq/rootish"
	"zombiezen.com/go/log"
)

// sequence is the positional surface shared by every list in this module
// except the singly linked list.
type sequence[T any] interface {
	Len() int
	Cap() int
	Get(i int) (T, bool)
	Set(i int, x T) (T, bool)
	Add(i int, x T) bool
	Remove(i int) (T, bool)
}

var structures = map[string]func(capacity int) sequence[int]{
	"arraystack": func(c int) sequence[int] { return arraystack.New[int](c) },
	"deque":      func(c int) sequence[int] { return deque.New[int](c) },
	"dualdeque":  func(c int) sequence[int] { return dualdeque.New[int](c) },
	"rootish":    func(c int) sequence[int] { return rootish.New[int](c) },
	"dlist":      func(int) sequence[int] { return new(linkedlist.DList[int]) },
}

// cancelCheckInterval is the number of operations between checks of the Context.
const cancelCheckInterval = 1024

type result struct {
	name      string
	structure string
	ops       int
	len       int
	cap       int
	peakCap   int
	peakWaste int
}

type runner struct {
	w       *workload
	seq     sequence[int]
	model   []int
	rng     *rand.Rand
	ops     int
	peakCap int
	waste   int
}

// runWorkload replays w against a fresh structure,
// comparing it to a slice after every operation.
func runWorkload(ctx context.Context, w *workload) (*result, error) {
	r := &runner{
		w:   w,
		seq: structures[w.structure](w.capacity),
		rng: rand.New(rand.NewPCG(w.seed, w.seed)),
	}
	r.sample()
	for k := 0; k < w.ops; k++ {
		if err := r.step(ctx); err != nil {
			return nil, fmt.Errorf("workload %s: insert #%d: %w", w.name, k, err)
		}
		i := r.pick(w.insert, len(r.model)+1)
		if !r.seq.Add(i, k) {
			return nil, fmt.Errorf("workload %s: insert #%d: Add(%d, _) rejected with %d elements", w.name, k, i, len(r.model))
		}
		r.model = slices.Insert(r.model, i, k)
		r.sample()
	}
	if err := r.compare(); err != nil {
		return nil, fmt.Errorf("workload %s: after inserts: %w", w.name, err)
	}
	log.Debugf(ctx, "Workload %s: inserted %d elements (cap = %d)", w.name, w.ops, r.seq.Cap())

	if w.remove != positionNone {
		for k := 0; len(r.model) > 0; k++ {
			if err := r.step(ctx); err != nil {
				return nil, fmt.Errorf("workload %s: remove #%d: %w", w.name, k, err)
			}
			i := r.pick(w.remove, len(r.model))
			got, ok := r.seq.Remove(i)
			if !ok || got != r.model[i] {
				return nil, fmt.Errorf("workload %s: remove #%d: Remove(%d) = %d, %t; want %d, true", w.name, k, i, got, ok, r.model[i])
			}
			r.model = slices.Delete(r.model, i, i+1)
			r.sample()
		}
		if err := r.compare(); err != nil {
			return nil, fmt.Errorf("workload %s: after removes: %w", w.name, err)
		}
		if _, ok := r.seq.Remove(0); ok {
			return nil, fmt.Errorf("workload %s: Remove(0) succeeded on empty structure", w.name)
		}
	}

	return &result{
		name:      w.name,
		structure: w.structure,
		ops:       r.ops,
		len:       r.seq.Len(),
		cap:       r.seq.Cap(),
		peakCap:   r.peakCap,
		peakWaste: r.waste,
	}, nil
}

// step counts an operation, checking for cancellation
// and running a full comparison at the configured interval.
func (r *runner) step(ctx context.Context) error {
	if r.ops%cancelCheckInterval == 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	if r.ops > 0 && r.ops%r.w.checkEvery == 0 {
		if err := r.compare(); err != nil {
			return err
		}
	}
	r.ops++
	return nil
}

// pick returns an index in [0, n) for the position p.
func (r *runner) pick(p position, n int) int {
	switch p {
	case positionFront:
		return 0
	case positionBack:
		return n - 1
	case positionMiddle:
		return (n - 1) / 2
	case positionRandom:
		return r.rng.IntN(n)
	default:
		panic("unreachable")
	}
}

func (r *runner) sample() {
	c := r.seq.Cap()
	r.peakCap = max(r.peakCap, c)
	r.waste = max(r.waste, c-r.seq.Len())
}

// compare checks every element of the structure against the model.
// It also writes each element back to verify that Set reports the old value.
func (r *runner) compare() error {
	if got, want := r.seq.Len(), len(r.model); got != want {
		return fmt.Errorf("Len() = %d; want %d", got, want)
	}
	for i, want := range r.model {
		if got, ok := r.seq.Get(i); !ok || got != want {
			return fmt.Errorf("Get(%d) = %d, %t; want %d, true", i, got, ok, want)
		}
		if prev, ok := r.seq.Set(i, want); !ok || prev != want {
			return fmt.Errorf("Set(%d, %d) = %d, %t; want %d, true", i, want, prev, ok, want)
		}
	}
	if got, ok := r.seq.Get(len(r.model)); ok {
		return fmt.Errorf("Get(%d) = %d, true past the end", len(r.model), got)
	}
	return nil
}

func writeReport(w io.Writer, results []*result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "WORKLOAD\tSTRUCTURE\tOPS\tLEN\tCAP\tPEAK CAP\tPEAK WASTE")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\n", r.name, r.structure, r.ops, r.len, r.cap, r.peakCap, r.peakWaste)
	}
	return tw.Flush()
}
