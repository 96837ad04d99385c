/*
   Copyright 2020 Docker Compose CLI authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package compose holds the reconciliation controller: the stable hasher,
// the planners, and the applier that together converge a project's
// observed containers onto its declared Composition.
package compose

import (
	"context"
	"fmt"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

// Controller holds one project's declared Composition alongside an
// immutable snapshot of its observed containers, taken once at
// construction. It never refreshes the snapshot mid-run: each Controller
// is a one-shot plan-and-apply instance rather than one that re-queries
// the backend on every call.
type Controller struct {
	projectName string
	backend     api.Backend
	composition model.Composition
	observed    map[model.ContainerName]model.Container
}

// NewController lists the project's containers once and freezes that as
// the observation set for the lifetime of the returned Controller.
func NewController(ctx context.Context, projectName string, backend api.Backend, composition model.Composition) (*Controller, error) {
	observed, err := backend.ListContainers(ctx, map[string]string{
		api.ProjectLabel: projectName,
	})
	if err != nil {
		return nil, fmt.Errorf("listing containers for project %s: %w", projectName, err)
	}
	return &Controller{
		projectName: projectName,
		backend:     backend,
		composition: composition,
		observed:    observed,
	}, nil
}
