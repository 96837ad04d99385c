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
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/docker/errdefs"
	units "github.com/docker/go-units"
	"github.com/moby/go-archive"
	"github.com/sirupsen/logrus"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

// dockerBackend implements api.Backend against a real docker/podman API
// socket, reached through the standard moby client. Apart from
// cmd/podcompose, which only constructs that client, this is the only
// package in this module that imports the runtime SDK directly - the
// controller itself depends on api.Backend instead.
type dockerBackend struct {
	client client.APIClient
}

// NewDockerBackend wraps an already-configured client.APIClient.
func NewDockerBackend(apiClient client.APIClient) api.Backend {
	return &dockerBackend{client: apiClient}
}

func (b *dockerBackend) GetImage(ctx context.Context, name model.ImageName) (*model.ImageId, error) {
	inspect, _, err := b.client.ImageInspectWithRaw(ctx, string(name))
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("inspect image %s: %w", name, err)
	}
	id := model.ImageId(inspect.ID)
	return &id, nil
}

func (b *dockerBackend) PullImage(ctx context.Context, name model.ImageName) (model.ImageId, error) {
	reader, err := b.client.ImagePull(ctx, string(name), image.PullOptions{})
	if err != nil {
		return "", fmt.Errorf("pull image %s: %w", name, err)
	}
	defer reader.Close()
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", fmt.Errorf("pull image %s: %w", name, err)
	}

	inspect, _, err := b.client.ImageInspectWithRaw(ctx, string(name))
	if err != nil {
		return "", fmt.Errorf("inspect pulled image %s: %w", name, err)
	}
	return model.ImageId(inspect.ID), nil
}

func (b *dockerBackend) BuildImage(ctx context.Context, spec model.BuildSpec) (model.ImageId, error) {
	contextTar, err := archive.TarWithOptions(spec.Context, &archive.TarOptions{})
	if err != nil {
		return "", fmt.Errorf("build %s: archiving context %s: %w", spec.OutputName, spec.Context, err)
	}
	defer contextTar.Close()

	dockerfile := spec.Dockerfile
	if dockerfile == "" {
		dockerfile = "Dockerfile"
	}

	counted := &countingReader{r: contextTar}
	resp, err := b.client.ImageBuild(ctx, counted, types.ImageBuildOptions{
		Tags:       []string{string(spec.OutputName)},
		Dockerfile: dockerfile,
		Target:     spec.Target,
		BuildArgs:  buildArgPointers(spec.Args),
	})
	if err != nil {
		return "", fmt.Errorf("build %s: %w", spec.OutputName, err)
	}
	logrus.Debugf("build %s: sent %s build context", spec.OutputName, units.HumanSize(float64(counted.n)))
	defer resp.Body.Close()
	if _, err := io.Copy(io.Discard, resp.Body); err != nil {
		return "", fmt.Errorf("build %s: %w", spec.OutputName, err)
	}

	inspect, _, err := b.client.ImageInspectWithRaw(ctx, string(spec.OutputName))
	if err != nil {
		return "", fmt.Errorf("inspect built image %s: %w", spec.OutputName, err)
	}
	return model.ImageId(inspect.ID), nil
}

func (b *dockerBackend) ListContainers(ctx context.Context, labels map[string]string) (map[model.ContainerName]model.Container, error) {
	summaries, err := b.client.ContainerList(ctx, container.ListOptions{
		All:     true,
		Filters: labelFilters(labels),
	})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	out := make(map[model.ContainerName]model.Container, len(summaries))
	for _, summary := range summaries {
		name := model.ContainerName(canonicalName(summary.Names))
		out[name] = model.Container{
			Id:     model.ContainerId(summary.ID),
			Name:   name,
			Status: model.ParseContainerStatus(summary.State),
			Labels: summary.Labels,
		}
	}
	return out, nil
}

func (b *dockerBackend) CreateContainer(ctx context.Context, spec model.ContainerSpec) (model.ContainerId, error) {
	resp, err := b.client.ContainerCreate(ctx,
		&container.Config{
			Image:  string(spec.ImageName),
			Cmd:    spec.Command,
			Env:    envPairs(spec.Environment),
			Labels: spec.Labels,
		},
		&container.HostConfig{},
		nil,
		nil,
		string(spec.Name),
	)
	if err != nil {
		return "", fmt.Errorf("create container %s: %w", spec.Name, err)
	}
	return model.ContainerId(resp.ID), nil
}

func (b *dockerBackend) StartContainer(ctx context.Context, id model.ContainerId) error {
	if err := b.client.ContainerStart(ctx, string(id), container.StartOptions{}); err != nil {
		return fmt.Errorf("start container %s: %w", id, err)
	}
	return nil
}

func (b *dockerBackend) StopContainer(ctx context.Context, id model.ContainerId, timeout time.Duration) error {
	seconds := int(timeout.Seconds())
	if err := b.client.ContainerStop(ctx, string(id), container.StopOptions{Timeout: &seconds}); err != nil {
		return fmt.Errorf("stop container %s: %w", id, err)
	}
	return nil
}

func (b *dockerBackend) RemoveContainer(ctx context.Context, id model.ContainerId, removeVolumes bool) error {
	if err := b.client.ContainerRemove(ctx, string(id), container.RemoveOptions{RemoveVolumes: removeVolumes}); err != nil {
		return fmt.Errorf("remove container %s: %w", id, err)
	}
	return nil
}

// canonicalName strips the leading slash the API prepends to container
// names. A container always has exactly one primary name in this system;
// no other attachment alters it after creation.
func canonicalName(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "/")
}

func envPairs(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(env))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, env[k]))
	}
	return pairs
}

// countingReader tallies bytes read through it so BuildImage can report a
// human-readable build-context size after the upload completes, without
// depending on the tar archiver exposing its own size up front.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func buildArgPointers(args map[string]string) map[string]*string {
	if len(args) == 0 {
		return nil
	}
	out := make(map[string]*string, len(args))
	for k, v := range args {
		v := v
		out[k] = &v
	}
	return out
}

