package v1

import (
	"context"
	"errors"
	"fmt"

	"github.com/openpanel/ai-service/app/core"
	"github.com/openpanel/ai-service/app/store"
	cerrors "github.com/openpanel/ai-service/pkg/errors"
	"github.com/openpanel/ai-service/pkg/i18n"
	"github.com/openpanel/ai-service/pkg/types"
)

// ResourceLogic implements the resource lifecycle on top of any
// ResourceStore. Every failure it returns is a *cerrors.CustomizedError
// whose kind is one of validation, invalid identifier, not found or
// internal.
type ResourceLogic[ID any] struct {
	ctx   context.Context
	core  *core.Core
	store store.ResourceStore[ID]
}

func NewResourceLogic[ID any](ctx context.Context, core *core.Core, resources store.ResourceStore[ID]) *ResourceLogic[ID] {
	return &ResourceLogic[ID]{
		ctx:   ctx,
		core:  core,
		store: resources,
	}
}

func (l *ResourceLogic[ID]) observe(op string) func(err *error) {
	if l.core == nil {
		return func(*error) {}
	}
	timer := l.core.Metrics().StoreOpTimer(op)
	return func(err *error) {
		timer.ObserveDuration()
		if *err != nil && cerrors.KindOf(*err) == cerrors.KindInternal {
			l.core.Metrics().StoreOpErrorInc(op)
		}
	}
}

func (l *ResourceLogic[ID]) parseID(trace, raw string) (ID, error) {
	id, err := l.store.ParseID(raw)
	if err != nil {
		return id, cerrors.New(trace+".ParseID", i18n.ERROR_INVALID_IDENTIFIER, err).
			WithKind(cerrors.KindInvalidIdentifier).
			WithData(map[string]interface{}{"ID": raw})
	}
	return id, nil
}

func notFound(trace, raw string) *cerrors.CustomizedError {
	return cerrors.New(trace, i18n.ERROR_NOT_FOUND, store.ErrNotFound).
		WithKind(cerrors.KindNotFound).
		WithData(map[string]interface{}{"ID": raw})
}

func invalidArgument(trace, reason string) *cerrors.CustomizedError {
	return cerrors.New(trace, i18n.ERROR_INVALIDARGUMENT, errors.New(reason)).
		WithKind(cerrors.KindValidation).
		WithData(map[string]interface{}{"Reason": reason})
}

func (l *ResourceLogic[ID]) Create(name, resourceType, content string) (_ *types.Resource, err error) {
	defer l.observe("create")(&err)

	if name == "" || resourceType == "" {
		return nil, invalidArgument("ResourceLogic.Create", "name and type are required")
	}

	data := types.Resource{
		Name:      name,
		Type:      resourceType,
		Content:   content,
		CreatedAt: types.GetCurrentTime(),
	}
	id, err := l.store.Create(l.ctx, data)
	if err != nil {
		return nil, cerrors.New("ResourceLogic.Create.ResourceStore.Create", i18n.ERROR_INTERNAL, err)
	}
	data.ID = l.store.FormatID(id)
	return &data, nil
}

func (l *ResourceLogic[ID]) Get(rawID string) (_ *types.Resource, err error) {
	defer l.observe("get")(&err)

	id, err := l.parseID("ResourceLogic.Get", rawID)
	if err != nil {
		return nil, err
	}
	return l.getByID("ResourceLogic.Get", rawID, id)
}

func (l *ResourceLogic[ID]) getByID(trace, rawID string, id ID) (*types.Resource, error) {
	data, err := l.store.GetResource(l.ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cerrors.Trace(trace, notFound("ResourceStore.GetResource", rawID))
		}
		return nil, cerrors.Wrap(err, trace+".ResourceStore.GetResource", i18n.ERROR_INTERNAL)
	}
	return data, nil
}

// List returns up to limit resources in the store's natural order.
func (l *ResourceLogic[ID]) List(limit int64) (_ []types.Resource, err error) {
	defer l.observe("list")(&err)

	if limit < 1 {
		return nil, invalidArgument("ResourceLogic.List", fmt.Sprintf("limit must be a positive integer, got %d", limit))
	}

	list, err := l.store.ListResources(l.ctx, limit)
	if err != nil {
		return nil, cerrors.New("ResourceLogic.List.ResourceStore.ListResources", i18n.ERROR_INTERNAL, err)
	}
	if list == nil {
		list = []types.Resource{}
	}
	return list, nil
}

// Update merges the non-nil fields of patch into the resource.
//
// An empty patch, a patch whose values equal the stored ones and a write
// that modified nothing all return the current document. Only a missing
// document is an error. Callers cannot tell these no-op cases apart, and a
// concurrent writer may have changed the document between the write and the
// read back; the last writer wins.
func (l *ResourceLogic[ID]) Update(rawID string, patch types.UpdateResource) (_ *types.Resource, err error) {
	defer l.observe("update")(&err)

	id, err := l.parseID("ResourceLogic.Update", rawID)
	if err != nil {
		return nil, err
	}

	if problems := patch.Validate(); len(problems) > 0 {
		return nil, invalidArgument("ResourceLogic.Update", problems[0])
	}

	changes := patch.ChangeSet()
	if !changes.IsEmpty() {
		modified, err := l.store.Update(l.ctx, id, changes)
		if err != nil {
			return nil, cerrors.New("ResourceLogic.Update.ResourceStore.Update", i18n.ERROR_INTERNAL, err)
		}
		if modified == 1 {
			return l.getByID("ResourceLogic.Update.Modified", rawID, id)
		}
	}

	return l.getByID("ResourceLogic.Update.ReadBack", rawID, id)
}

// Delete removes exactly one resource. Deleting a missing resource is
// NotFound, every time.
func (l *ResourceLogic[ID]) Delete(rawID string) (err error) {
	defer l.observe("delete")(&err)

	id, err := l.parseID("ResourceLogic.Delete", rawID)
	if err != nil {
		return err
	}

	deleted, err := l.store.Delete(l.ctx, id)
	if err != nil {
		return cerrors.New("ResourceLogic.Delete.ResourceStore.Delete", i18n.ERROR_INTERNAL, err)
	}
	if deleted != 1 {
		return notFound("ResourceLogic.Delete", rawID)
	}
	return nil
}
