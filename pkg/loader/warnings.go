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

package loader

import (
	"fmt"
	"strings"

	"github.com/compose-spec/compose-go/v2/types"

	"github.com/podcompose/podcompose/pkg/utils"
)

// unsupportedFieldWarnings flags compose-file fields this system parses
// without ever acting on: networks, volumes, depends_on and deploy are
// all out of scope, but a service declaring them is not an error - the
// user just won't get what they expect from those keys. Surfacing that
// beats a silent no-op.
func unsupportedFieldWarnings(project *types.Project) []string {
	names := utils.Filter(project.ServiceNames(), func(name string) bool {
		return hasUnsupportedFields(project.Services[name])
	})

	warnings := make([]string, 0, len(names))
	for _, name := range names {
		warnings = append(warnings, fmt.Sprintf(
			"service %q declares %s, which this orchestrator does not act on",
			name, unsupportedFieldNames(project.Services[name])))
	}
	return warnings
}

func hasUnsupportedFields(service types.ServiceConfig) bool {
	return len(service.Networks) > 0 ||
		len(service.Volumes) > 0 ||
		len(service.DependsOn) > 0 ||
		service.Deploy != nil
}

func unsupportedFieldNames(service types.ServiceConfig) string {
	names := []string{"networks", "volumes", "depends_on", "deploy"}
	declared := utils.Filter(names, func(name string) bool {
		switch name {
		case "networks":
			return len(service.Networks) > 0
		case "volumes":
			return len(service.Volumes) > 0
		case "depends_on":
			return len(service.DependsOn) > 0
		default:
			return service.Deploy != nil
		}
	})
	return strings.Join(declared, ", ")
}
