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
	"os"
	"path/filepath"
)

var composeFileNames = []string{"docker-compose.yml", "docker-compose.yaml"}

// Discover walks from the current working directory upward to the
// filesystem root, looking for the first directory containing
// docker-compose.yml or docker-compose.yaml (yml preferred when a directory
// has both). It returns the absolute path to the compose file found and the
// directory's basename, used as the default project name. It does not
// change the process's working directory; callers that need relative build
// contexts to resolve correctly must chdir into the returned directory
// themselves.
func Discover() (configPath string, projectName string, err error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("discover compose file: %w", err)
	}

	for {
		for _, name := range composeFileNames {
			candidate := filepath.Join(dir, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate, filepath.Base(dir), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("discover compose file: no docker-compose.yml or docker-compose.yaml found from %s to filesystem root", dir)
		}
		dir = parent
	}
}
