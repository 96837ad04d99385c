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
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

func TestPullImagesAlwaysPullsEveryDeclaredImage(t *testing.T) {
	backend := newFakeBackend()
	backend.images["nginx:latest"] = "nginx:latest@existing"
	composition := model.Composition{PullImages: []model.ImageName{"nginx:latest", "redis:7"}}
	c := newTestController(backend, composition)

	err := c.PullImages(context.Background(), api.PullAlways)
	require.NoError(t, err)

	pulled := append([]model.ImageName(nil), backend.pulled...)
	sort.Slice(pulled, func(i, j int) bool { return pulled[i] < pulled[j] })
	assert.Equal(t, []model.ImageName{"nginx:latest", "redis:7"}, pulled)
}

func TestPullImagesIfNotPresentSkipsExistingImages(t *testing.T) {
	backend := newFakeBackend()
	backend.images["nginx:latest"] = "nginx:latest@existing"
	composition := model.Composition{PullImages: []model.ImageName{"nginx:latest", "redis:7"}}
	c := newTestController(backend, composition)

	err := c.PullImages(context.Background(), api.PullIfNotPresent)
	require.NoError(t, err)
	assert.Equal(t, []model.ImageName{"redis:7"}, backend.pulled)
}

func TestPullImagesPropagatesBackendError(t *testing.T) {
	backend := newFakeBackend()
	backend.pullErr = assertErr
	composition := model.Composition{PullImages: []model.ImageName{"redis:7"}}
	c := newTestController(backend, composition)

	err := c.PullImages(context.Background(), api.PullAlways)
	require.Error(t, err)
}

func TestPullImagesNoopWhenNothingDeclared(t *testing.T) {
	backend := newFakeBackend()
	c := newTestController(backend, model.Composition{})

	err := c.PullImages(context.Background(), api.PullAlways)
	require.NoError(t, err)
	assert.Empty(t, backend.pulled)
}
