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
	"encoding/json"
	"sort"

	"github.com/opencontainers/go-digest"

	"github.com/podcompose/podcompose/pkg/model"
)

// canonicalSpec is the hashed projection of a ContainerSpec: only the
// user-supplied fields, before system-label injection, shaped so it
// serializes the same way every time it's hashed.
type canonicalSpec struct {
	Name        model.ContainerName `json:"name"`
	ServiceName string              `json:"service_name"`
	ImageName   model.ImageName     `json:"image_name"`
	Command     *[]string           `json:"command"`
	Environment map[string]string   `json:"environment"`
	Labels      map[string]string   `json:"labels"`
}

// SpecHash computes the stable content hash of a ContainerSpec's
// user-visible fields, rendered as a lowercase hex digest. encoding/json
// already renders map keys in ascending order, which gives canonical
// ordering for Environment and Labels for free. Command is hashed through
// a pointer so a nil command (absent) and an empty-but-declared command
// hash differently, honoring the present/absent distinction for optional
// fields.
func SpecHash(spec model.ContainerSpec) (string, error) {
	canon := canonicalSpec{
		Name:        spec.Name,
		ServiceName: spec.ServiceName,
		ImageName:   spec.ImageName,
		Environment: sortedCopy(spec.Environment),
		Labels:      sortedCopy(spec.Labels),
	}
	if spec.Command != nil {
		cmd := make([]string, len(spec.Command))
		copy(cmd, spec.Command)
		canon.Command = &cmd
	}

	data, err := json.Marshal(canon)
	if err != nil {
		return "", err
	}
	return digest.SHA256.FromBytes(data).Encoded(), nil
}

// sortedCopy normalizes m so a nil map and an empty map hash identically -
// only declared content is part of a spec's identity, never the
// allocation.
func sortedCopy(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(map[string]string, len(m))
	for _, k := range keys {
		out[k] = m[k]
	}
	return out
}
