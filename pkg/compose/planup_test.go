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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

func webSpec() model.ContainerSpec {
	return model.ContainerSpec{
		Name:        "proj_web_0",
		ServiceName: "web",
		ImageName:   "nginx:latest",
	}
}

func TestPlanUpCreatesMissingContainer(t *testing.T) {
	backend := newFakeBackend()
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{webSpec()}})

	plan, err := c.PlanUp()
	require.NoError(t, err)
	assert.Equal(t, []api.PlannedOperation{{Name: "proj_web_0", Op: api.OpCreate}}, plan)
}

func TestPlanUpNoopWhenRunningAndHashMatches(t *testing.T) {
	backend := newFakeBackend()
	spec := webSpec()
	hash, err := SpecHash(spec)
	require.NoError(t, err)
	backend.containers[spec.Name] = model.Container{
		Id:     "id1",
		Name:   spec.Name,
		Status: model.StatusRunning,
		Labels: map[string]string{api.ConfigHashLabel: hash},
	}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

	plan, err := c.PlanUp()
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestPlanUpStartsConfiguredOrExitedWhenHashMatches(t *testing.T) {
	for _, status := range []model.ContainerStatus{model.StatusConfigured, model.StatusExited} {
		backend := newFakeBackend()
		spec := webSpec()
		hash, err := SpecHash(spec)
		require.NoError(t, err)
		backend.containers[spec.Name] = model.Container{
			Id:     "id1",
			Name:   spec.Name,
			Status: status,
			Labels: map[string]string{api.ConfigHashLabel: hash},
		}
		c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

		plan, err := c.PlanUp()
		require.NoError(t, err)
		assert.Equal(t, []api.PlannedOperation{{Name: spec.Name, Op: api.OpStart}}, plan)
	}
}

func TestPlanUpRecreatesOnHashMismatchEvenWhenRunning(t *testing.T) {
	backend := newFakeBackend()
	spec := webSpec()
	backend.containers[spec.Name] = model.Container{
		Id:     "id1",
		Name:   spec.Name,
		Status: model.StatusRunning,
		Labels: map[string]string{api.ConfigHashLabel: "stale-hash"},
	}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

	plan, err := c.PlanUp()
	require.NoError(t, err)
	assert.Equal(t, []api.PlannedOperation{{Name: spec.Name, Op: api.OpRecreate}}, plan)
}

func TestPlanUpRecreatesOnUnknownStatus(t *testing.T) {
	backend := newFakeBackend()
	spec := webSpec()
	hash, err := SpecHash(spec)
	require.NoError(t, err)
	backend.containers[spec.Name] = model.Container{
		Id:     "id1",
		Name:   spec.Name,
		Status: model.StatusUnknown,
		Labels: map[string]string{api.ConfigHashLabel: hash},
	}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

	plan, err := c.PlanUp()
	require.NoError(t, err)
	assert.Equal(t, []api.PlannedOperation{{Name: spec.Name, Op: api.OpRecreate}}, plan)
}

func TestPlanUpRemovesScaledDownReplicasOfDeclaredService(t *testing.T) {
	backend := newFakeBackend()
	spec := webSpec()
	backend.containers["proj_web_1"] = model.Container{
		Id:     "id2",
		Name:   "proj_web_1",
		Status: model.StatusRunning,
		Labels: map[string]string{api.ServiceLabel: "web"},
	}
	hash, err := SpecHash(spec)
	require.NoError(t, err)
	backend.containers[spec.Name] = model.Container{
		Id:     "id1",
		Name:   spec.Name,
		Status: model.StatusRunning,
		Labels: map[string]string{api.ConfigHashLabel: hash},
	}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

	plan, err := c.PlanUp()
	require.NoError(t, err)
	assert.Equal(t, []api.PlannedOperation{{Name: "proj_web_1", Op: api.OpRemove}}, plan)
}

func TestPlanUpIgnoresOrphansOfUndeclaredServices(t *testing.T) {
	backend := newFakeBackend()
	backend.containers["proj_legacy_0"] = model.Container{
		Id:     "id3",
		Name:   "proj_legacy_0",
		Status: model.StatusRunning,
		Labels: map[string]string{api.ServiceLabel: "legacy"},
	}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{webSpec()}})

	plan, err := c.PlanUp()
	require.NoError(t, err)
	assert.Equal(t, []api.PlannedOperation{{Name: "proj_web_0", Op: api.OpCreate}}, plan)
}

func TestPlanUpSortsScaledDownRemovalsDeterministically(t *testing.T) {
	backend := newFakeBackend()
	spec := webSpec()
	hash, err := SpecHash(spec)
	require.NoError(t, err)
	backend.containers[spec.Name] = model.Container{
		Id: "id0", Name: spec.Name, Status: model.StatusRunning,
		Labels: map[string]string{api.ConfigHashLabel: hash},
	}
	backend.containers["proj_web_2"] = model.Container{
		Id: "id2", Name: "proj_web_2", Status: model.StatusRunning,
		Labels: map[string]string{api.ServiceLabel: "web"},
	}
	backend.containers["proj_web_1"] = model.Container{
		Id: "id1", Name: "proj_web_1", Status: model.StatusRunning,
		Labels: map[string]string{api.ServiceLabel: "web"},
	}
	c := newTestController(backend, model.Composition{Containers: []model.ContainerSpec{spec}})

	plan, err := c.PlanUp()
	require.NoError(t, err)
	assert.Equal(t, []api.PlannedOperation{
		{Name: "proj_web_1", Op: api.OpRemove},
		{Name: "proj_web_2", Op: api.OpRemove},
	}, plan)
}
