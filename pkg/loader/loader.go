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

// Package loader turns a compose file on disk into a model.Composition,
// using compose-spec/compose-go/v2 to parse and normalize the YAML.
package loader

import (
	"context"
	"fmt"

	"github.com/compose-spec/compose-go/v2/cli"
	"github.com/compose-spec/compose-go/v2/types"

	"github.com/podcompose/podcompose/pkg/model"
)

// Options configures a single LoadProject call.
type Options struct {
	// ConfigPaths lists compose files to load, in override order. A nil
	// slice lets compose-go's own default-path discovery apply.
	ConfigPaths []string
	// WorkingDir is the directory relative paths (build contexts, env
	// files) are resolved against.
	WorkingDir string
	// ProjectName overrides the name compose-go would otherwise derive
	// from WorkingDir's basename.
	ProjectName string
}

// LoadProject parses the compose file(s) named by opts and normalizes the
// result into a Composition. Parse and validation errors from compose-go
// are returned unwrapped, since the source of those errors is already
// precise about line and file. The returned warnings flag compose-file
// fields this system parses but never acts on (see warnings.go); callers
// should surface them to the operator rather than silently drop them.
func LoadProject(ctx context.Context, opts Options) (model.Composition, []string, error) {
	projectOptions, err := cli.NewProjectOptions(
		opts.ConfigPaths,
		cli.WithWorkingDirectory(opts.WorkingDir),
		cli.WithOsEnv,
		cli.WithDotEnv,
		cli.WithDefaultConfigPath,
		cli.WithName(opts.ProjectName),
	)
	if err != nil {
		return model.Composition{}, nil, err
	}

	project, err := projectOptions.LoadProject(ctx)
	if err != nil {
		return model.Composition{}, nil, err
	}

	return normalize(project), unsupportedFieldWarnings(project), nil
}

// normalize flattens a compose-go Project into the Composition shape the
// controller reasons about: one ContainerSpec per service replica, plus the
// distinct pull and build image lists.
func normalize(project *types.Project) model.Composition {
	comp := model.Composition{}
	seenPull := map[model.ImageName]bool{}

	for _, name := range project.ServiceNames() {
		service := project.Services[name]

		if service.Build != nil {
			comp.BuildImages = append(comp.BuildImages, model.BuildSpec{
				OutputName: model.ImageName(imageNameFor(service)),
				Context:    service.Build.Context,
				Dockerfile: service.Build.Dockerfile,
				Target:     service.Build.Target,
				Args:       flattenMappingWithEquals(service.Build.Args),
			})
		} else if service.Image != "" {
			image := model.ImageName(service.Image)
			if !seenPull[image] {
				seenPull[image] = true
				comp.PullImages = append(comp.PullImages, image)
			}
		}

		replicas := service.Scale
		if replicas <= 0 {
			replicas = 1
		}

		for i := 0; i < replicas; i++ {
			comp.Containers = append(comp.Containers, model.ContainerSpec{
				Name:        model.NewContainerName(project.Name, service.Name, i),
				ServiceName: service.Name,
				ImageName:   model.ImageName(imageNameFor(service)),
				Command:     []string(service.Command),
				Environment: flattenMappingWithEquals(service.Environment),
				Labels:      map[string]string(service.Labels),
			})
		}
	}

	return comp
}

// imageNameFor returns the image a service's containers run: the declared
// image tag, or "<service>_build" when the service only builds and never
// names an image of its own.
func imageNameFor(service types.ServiceConfig) string {
	if service.Image != "" {
		return service.Image
	}
	return fmt.Sprintf("%s_%s", service.Name, "build")
}

// flattenMappingWithEquals drops unset ("KEY" with no "=value") entries,
// which compose-go represents as a nil pointer meaning "inherit from the
// calling shell's environment" - a concern that does not apply once the
// value is baked into a ContainerSpec's hash.
func flattenMappingWithEquals[M ~map[string]*string](m M) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != nil {
			out[k] = *v
		}
	}
	return out
}
