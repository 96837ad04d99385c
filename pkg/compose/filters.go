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

package compose

import (
	"fmt"
	"sort"

	"github.com/docker/docker/api/types/filters"
)

// labelFilters builds an AND filter set over an arbitrary label map, used
// by ListContainers to restrict the observation snapshot to containers
// owned by a single project.
func labelFilters(labels map[string]string) filters.Args {
	args := filters.NewArgs()
	for _, k := range sortedKeys(labels) {
		args.Add("label", fmt.Sprintf("%s=%s", k, labels[k]))
	}
	return args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
