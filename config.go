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
	"strconv"
	"strings"

	"zombiezen.com/go/ini"
	"zombiezen.com/go/log"
)

type configuration struct {
	parallelism int
	workloads   map[string]*workload
}

type workload struct {
	name       string
	structure  string
	capacity   int
	ops        int
	insert     position
	remove     position
	seed       uint64
	checkEvery int
}

// position selects where in a sequence an operation happens.
type position int

const (
	positionNone position = iota
	positionFront
	positionBack
	positionMiddle
	positionRandom
)

var positionNames = map[string]position{
	"none":   positionNone,
	"front":  positionFront,
	"back":   positionBack,
	"middle": positionMiddle,
	"random": positionRandom,
}

func (p position) String() string {
	for name, q := range positionNames {
		if p == q {
			return name
		}
	}
	return fmt.Sprintf("position(%d)", int(p))
}

var workloadKeys = []string{
	"structure",
	"capacity",
	"ops",
	"insert",
	"remove",
	"seed",
	"check-every",
}

const (
	defaultCheckEvery = 1000
	defaultSeed       = 1
)

func (cfg *configuration) fill(source configer) error {
	if cfg.parallelism == 0 {
		n, err := intValue(source, "", "parallelism", 0)
		if err != nil {
			return fmt.Errorf("read config: %v", err)
		}
		if n < 0 {
			return fmt.Errorf("read config: parallelism must not be negative")
		}
		cfg.parallelism = n
	}
	for section := range source.Sections() {
		const prefix = "workload "
		if !strings.HasPrefix(section, prefix) {
			if section != "" {
				log.Warnf(context.TODO(), "Unknown config section %q", section)
			}
			continue
		}
		name := strings.TrimSpace(section[len(prefix):])
		if name == "" {
			log.Warnf(context.TODO(), "Unknown config section %q", section)
			continue
		}

		if cfg.workloads == nil {
			cfg.workloads = make(map[string]*workload)
		} else if cfg.workloads[name] != nil {
			return fmt.Errorf("read config: conflicting definition of workload %s", name)
		}
		w, err := parseWorkload(source, section, name)
		if err != nil {
			return fmt.Errorf("read config: workload %s: %v", name, err)
		}
		cfg.workloads[name] = w
	}
	return nil
}

func parseWorkload(source configer, section, name string) (*workload, error) {
	w := &workload{name: name}
	for _, key := range workloadKeys {
		if len(source.Find(section, key)) > 1 {
			return nil, fmt.Errorf("%s set more than once", key)
		}
	}

	w.structure = strings.TrimSpace(source.Get(section, "structure"))
	if w.structure == "" {
		return nil, fmt.Errorf("structure not set")
	}
	if structures[w.structure] == nil {
		v := source.Value(section, "structure")
		return nil, fmt.Errorf("%s: unknown structure %q", location(v), w.structure)
	}

	var err error
	if w.capacity, err = intValue(source, section, "capacity", 0); err != nil {
		return nil, err
	}
	if w.capacity < 0 {
		return nil, fmt.Errorf("%s: capacity must not be negative", location(source.Value(section, "capacity")))
	}
	if source.Value(section, "ops") == nil {
		return nil, fmt.Errorf("ops not set")
	}
	if w.ops, err = intValue(source, section, "ops", 0); err != nil {
		return nil, err
	}
	if w.ops <= 0 {
		return nil, fmt.Errorf("%s: ops must be positive", location(source.Value(section, "ops")))
	}
	if w.checkEvery, err = intValue(source, section, "check-every", defaultCheckEvery); err != nil {
		return nil, err
	}
	if w.checkEvery <= 0 {
		return nil, fmt.Errorf("%s: check-every must be positive", location(source.Value(section, "check-every")))
	}
	w.seed = defaultSeed
	if v := source.Value(section, "seed"); v != nil {
		w.seed, err = strconv.ParseUint(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid seed %q", location(v), v.Value)
		}
	}

	if w.insert, err = positionValue(source, section, "insert", positionBack); err != nil {
		return nil, err
	}
	if w.insert == positionNone {
		return nil, fmt.Errorf("%s: insert cannot be none", location(source.Value(section, "insert")))
	}
	if w.remove, err = positionValue(source, section, "remove", positionNone); err != nil {
		return nil, err
	}
	return w, nil
}

func intValue(source configer, section, key string, def int) (int, error) {
	v := source.Value(section, key)
	if v == nil {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v.Value))
	if err != nil {
		return 0, fmt.Errorf("%s: %s: invalid integer %q", location(v), key, v.Value)
	}
	return n, nil
}

func positionValue(source configer, section, key string, def position) (position, error) {
	v := source.Value(section, key)
	if v == nil {
		return def, nil
	}
	p, ok := positionNames[strings.TrimSpace(v.Value)]
	if !ok {
		return 0, fmt.Errorf("%s: %s: unknown position %q", location(v), key, v.Value)
	}
	return p, nil
}

// location formats where v was defined for use in error messages.
func location(v *ini.Value) string {
	switch {
	case v == nil:
		return "<unknown>"
	case v.Filename == "":
		return fmt.Sprintf("line %d", v.Line)
	default:
		return fmt.Sprintf("%s:%d", v.Filename, v.Line)
	}
}

type configer interface {
	Get(section, key string) string
	Value(section, key string) *ini.Value
	Find(section, key string) []string
	Sections() map[string]struct{}
}
