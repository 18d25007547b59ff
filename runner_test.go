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
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"zombiezen.com/go/log/testlog"
)

func TestRunWorkload(t *testing.T) {
	structureNames := []string{"arraystack", "deque", "dualdeque", "rootish", "dlist"}
	inserts := []position{positionFront, positionBack, positionMiddle, positionRandom}
	removes := []position{positionNone, positionFront, positionBack, positionMiddle, positionRandom}
	for _, structure := range structureNames {
		for _, insert := range inserts {
			for _, remove := range removes {
				name := fmt.Sprintf("%s/%v/%v", structure, insert, remove)
				t.Run(name, func(t *testing.T) {
					ctx := testlog.WithTB(context.Background(), t)
					w := &workload{
						name:       name,
						structure:  structure,
						capacity:   3,
						ops:        300,
						insert:     insert,
						remove:     remove,
						seed:       7,
						checkEvery: 25,
					}
					r, err := runWorkload(ctx, w)
					if err != nil {
						t.Fatal(err)
					}
					wantOps, wantLen := 300, 300
					if remove != positionNone {
						wantOps, wantLen = 600, 0
					}
					if r.ops != wantOps || r.len != wantLen {
						t.Errorf("ops, len = %d, %d; want %d, %d", r.ops, r.len, wantOps, wantLen)
					}
					if r.peakCap < 300 {
						t.Errorf("peakCap = %d; want >= 300", r.peakCap)
					}
					if r.peakWaste < 0 || r.peakWaste > r.peakCap {
						t.Errorf("peakWaste = %d with peakCap = %d", r.peakWaste, r.peakCap)
					}
				})
			}
		}
	}
}

func TestRunWorkloadSpace(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	run := func(structure string) *result {
		t.Helper()
		r, err := runWorkload(ctx, &workload{
			name:       structure,
			structure:  structure,
			ops:        10000,
			insert:     positionBack,
			seed:       1,
			checkEvery: 1000,
		})
		if err != nil {
			t.Fatal(err)
		}
		return r
	}
	stack := run("arraystack")
	root := run("rootish")
	if stack.peakCap < 10000 || root.peakCap < 10000 {
		t.Fatalf("peak capacities = %d, %d; want >= 10000", stack.peakCap, root.peakCap)
	}
	// An array that doubles wastes a constant fraction of its slots;
	// triangular blocks waste O(√n).
	if root.peakWaste >= stack.peakWaste {
		t.Errorf("rootish peak waste = %d; want less than arraystack peak waste %d", root.peakWaste, stack.peakWaste)
	}
	if root.peakWaste > 200 {
		t.Errorf("rootish peak waste = %d; want <= 200 for 10000 elements", root.peakWaste)
	}
}

func TestRunWorkloadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(testlog.WithTB(context.Background(), t))
	cancel()
	_, err := runWorkload(ctx, &workload{
		name:       "canceled",
		structure:  "deque",
		ops:        10,
		insert:     positionBack,
		seed:       1,
		checkEvery: 1000,
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("runWorkload(...) = _, %v; want %v", err, context.Canceled)
	}
}

func TestRun(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	cfg := &configuration{
		parallelism: 2,
		workloads: map[string]*workload{
			"b-queue": {
				name:       "b-queue",
				structure:  "deque",
				ops:        20,
				insert:     positionBack,
				remove:     positionFront,
				seed:       1,
				checkEvery: 5,
			},
			"a-grow": {
				name:       "a-grow",
				structure:  "arraystack",
				ops:        5,
				insert:     positionBack,
				seed:       1,
				checkEvery: 1000,
			},
		},
	}
	out := new(strings.Builder)
	if err := run(ctx, out, cfg); err != nil {
		t.Fatal(err)
	}
	var got [][]string
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		got = append(got, strings.Fields(line))
	}
	want := [][]string{
		{"WORKLOAD", "STRUCTURE", "OPS", "LEN", "CAP", "PEAK", "CAP", "PEAK", "WASTE"},
		{"a-grow", "arraystack", "5", "5", "8", "8", "3"},
		{"b-queue", "deque", "40", "0", "1", "32", "21"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("report (-want +got):\n%s", diff)
	}
}

func TestRunNoWorkloads(t *testing.T) {
	ctx := testlog.WithTB(context.Background(), t)
	if err := run(ctx, new(strings.Builder), new(configuration)); err == nil {
		t.Error("run with no workloads did not return an error")
	}
}

func TestStructuresMatchModel(t *testing.T) {
	for name, newSequence := range structures {
		t.Run(name, func(t *testing.T) {
			seq := newSequence(0)
			var model []int
			for k, i := range []int{0, 0, 2, 1, 4, 2} {
				if !seq.Add(i, k) {
					t.Fatalf("Add(%d, %d) = false", i, k)
				}
				model = slices.Insert(model, i, k)
			}
			if seq.Add(len(model)+1, 99) {
				t.Errorf("Add(%d, 99) = true past the end", len(model)+1)
			}
			got := make([]int, seq.Len())
			for i := range got {
				got[i], _ = seq.Get(i)
			}
			if diff := cmp.Diff(model, got); diff != "" {
				t.Errorf("contents (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMain(m *testing.M) {
	testlog.Main(nil)
	os.Exit(m.Run())
}
