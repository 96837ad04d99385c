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

package api

const (
	// ProjectLabel scopes a container to the project that created it.
	ProjectLabel = "io.podman.compose.project"
	// ServiceLabel scopes a container to the declared service it belongs to.
	ServiceLabel = "io.podman.compose.service"
	// ConfigHashLabel stores the hex digest of the ContainerSpec a
	// container was created from, used to detect configuration drift.
	ConfigHashLabel = "io.podman.compose.hash"
)
