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

package model

// BuildSpec declares a locally-built image.
type BuildSpec struct {
	// OutputName is the image name the built image is tagged with.
	OutputName ImageName
	// Context is the build context directory, resolved relative to the
	// compose file's directory.
	Context string
	// Dockerfile is the path to the dockerfile, relative to Context unless
	// absolute.
	Dockerfile string
	// Target is the optional build stage to stop at. Empty means "final
	// stage".
	Target string
	// Args are build-time --build-arg values. Being a map, they carry no
	// declaration order.
	Args map[string]string
}

// ContainerSpec is the per-replica desired state: one compose service
// replica. Labels holds only user-supplied labels; the controller injects
// the three system labels (project, service, hash) at Create time, after
// the hash has already been computed over this struct.
type ContainerSpec struct {
	Name        ContainerName
	ServiceName string
	ImageName   ImageName
	Command     []string
	Environment map[string]string
	Labels      map[string]string
}

// Composition is the fully-parsed desired state of a project: images to
// pull, images to build, and the container replicas to run. The controller
// never mutates a Composition after construction.
type Composition struct {
	PullImages  []ImageName
	BuildImages []BuildSpec
	Containers  []ContainerSpec
}

// ServiceNames returns the set of distinct service names declared across
// Containers, in first-seen order.
func (c *Composition) ServiceNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, spec := range c.Containers {
		if seen[spec.ServiceName] {
			continue
		}
		seen[spec.ServiceName] = true
		names = append(names, spec.ServiceName)
	}
	return names
}

// ContainerSpec looks up a declared replica by name.
func (c *Composition) ContainerSpec(name ContainerName) (ContainerSpec, bool) {
	for _, spec := range c.Containers {
		if spec.Name == name {
			return spec, true
		}
	}
	return ContainerSpec{}, false
}

// Container is an observed runtime object, as reported by the backend.
type Container struct {
	Id     ContainerId
	Name   ContainerName
	Status ContainerStatus
	Labels map[string]string
}
