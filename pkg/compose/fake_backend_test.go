package compose

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/podcompose/podcompose/pkg/api"
	"github.com/podcompose/podcompose/pkg/model"
)

// assertErr is a sentinel error tests inject into a fakeBackend's *Err
// fields to assert that the controller propagates backend failures.
var assertErr = errors.New("fake backend error")

// fakeBackend is an in-memory api.Backend double. It records every pull,
// build, create, start, stop and remove it receives (GetImage and
// ListContainers are not recorded) so tests can assert on what the
// controller asked for, without
// standing up a real container runtime.
type fakeBackend struct {
	mu sync.Mutex

	containers map[model.ContainerName]model.Container
	images     map[model.ImageName]model.ImageId

	created []model.ContainerSpec
	started []model.ContainerId
	stopped []model.ContainerId
	removed []model.ContainerId
	pulled  []model.ImageName
	built   []model.ImageName

	nextID int

	createErr error
	startErr  error
	stopErr   error
	removeErr error
	pullErr   error
	buildErr  error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		containers: map[model.ContainerName]model.Container{},
		images:     map[model.ImageName]model.ImageId{},
	}
}

func (f *fakeBackend) GetImage(_ context.Context, name model.ImageName) (*model.ImageId, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.images[name]
	if !ok {
		return nil, nil
	}
	return &id, nil
}

func (f *fakeBackend) PullImage(_ context.Context, name model.ImageName) (model.ImageId, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pulled = append(f.pulled, name)
	if f.pullErr != nil {
		return "", f.pullErr
	}
	id := model.ImageId(string(name) + "@pulled")
	f.images[name] = id
	return id, nil
}

func (f *fakeBackend) BuildImage(_ context.Context, spec model.BuildSpec) (model.ImageId, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.built = append(f.built, spec.OutputName)
	if f.buildErr != nil {
		return "", f.buildErr
	}
	id := model.ImageId(string(spec.OutputName) + "@built")
	f.images[spec.OutputName] = id
	return id, nil
}

func (f *fakeBackend) ListContainers(_ context.Context, _ map[string]string) (map[model.ContainerName]model.Container, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[model.ContainerName]model.Container, len(f.containers))
	for k, v := range f.containers {
		out[k] = v
	}
	return out, nil
}

func (f *fakeBackend) CreateContainer(_ context.Context, spec model.ContainerSpec) (model.ContainerId, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, spec)
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := model.ContainerId(string(spec.Name) + "@created")
	f.containers[spec.Name] = model.Container{
		Id:     id,
		Name:   spec.Name,
		Status: model.StatusConfigured,
		Labels: spec.Labels,
	}
	return id, nil
}

func (f *fakeBackend) StartContainer(_ context.Context, id model.ContainerId) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = append(f.started, id)
	if f.startErr != nil {
		return f.startErr
	}
	for name, ctr := range f.containers {
		if ctr.Id == id {
			ctr.Status = model.StatusRunning
			f.containers[name] = ctr
		}
	}
	return nil
}

func (f *fakeBackend) StopContainer(_ context.Context, id model.ContainerId, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, id)
	if f.stopErr != nil {
		return f.stopErr
	}
	for name, ctr := range f.containers {
		if ctr.Id == id {
			ctr.Status = model.StatusExited
			f.containers[name] = ctr
		}
	}
	return nil
}

func (f *fakeBackend) RemoveContainer(_ context.Context, id model.ContainerId, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	if f.removeErr != nil {
		return f.removeErr
	}
	for name, ctr := range f.containers {
		if ctr.Id == id {
			delete(f.containers, name)
		}
	}
	return nil
}

var _ api.Backend = (*fakeBackend)(nil)
