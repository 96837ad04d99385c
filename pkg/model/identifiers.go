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

// Package model holds the desired and observed state podcompose reconciles:
// the parsed Composition, its ContainerSpecs, and the runtime's reported
// Containers.
package model

import "fmt"

// ImageId is a runtime-assigned image identifier.
type ImageId string

// ImageName is a user-declared image reference, e.g. "nginx:1.27".
type ImageName string

// ContainerId is a runtime-assigned container identifier.
type ContainerId string

// ContainerName is the stable, derived name of one service replica:
// "{project}_{service}_{replica_index}".
type ContainerName string

// NewContainerName builds the canonical replica name for a service.
func NewContainerName(project, service string, replica int) ContainerName {
	return ContainerName(fmt.Sprintf("%s_%s_%d", project, service, replica))
}
