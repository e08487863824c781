// File: instance.go
// Title: Weak Instance Registry
// Description: Tracks the live objects commands run on. Objects are held
//              through weak pointers so the console never keeps them alive,
//              grouped by an owner key, and pruned lazily or on Clean.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package instance

import (
	"fmt"
	"reflect"
	"sync"
	"weak"

	"github.com/msto63/devconsole/foundation/core/log"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// GroupKey identifies an instance group
type GroupKey uintptr

// Reserved group keys
const (
	UngroupedKey GroupKey = 0
	StaticKey    GroupKey = 1
)

// Reserved group names
const (
	UngroupedName = "Ungrouped"
	StaticName    = "Static Types"
)

// Owner selects the group an instance is tracked in. The zero Owner puts
// the instance into the ungrouped bucket.
type Owner struct {
	Key  GroupKey
	Name string
}

// OwnerOf derives an owner from the identity of obj
func OwnerOf[T any](obj *T, name string) Owner {
	if obj == nil {
		return Owner{}
	}
	return Owner{Key: GroupKey(reflect.ValueOf(obj).Pointer()), Name: name}
}

// Instance is one tracked object or static type
type Instance struct {
	Class  string
	Key    uintptr
	Static bool
	value  func() (any, bool)
}

// Value returns a strong reference to the object, or false once it has
// been collected. Static instances have no object.
func (i *Instance) Value() (any, bool) {
	if i.value == nil {
		return nil, false
	}
	return i.value()
}

// Alive reports whether the object is still reachable
func (i *Instance) Alive() bool {
	if i.Static {
		return true
	}
	_, ok := i.Value()
	return ok
}

// Group holds the instances tracked under one owner key
type Group struct {
	Key       GroupKey
	Name      string
	instances map[uintptr]*Instance
	order     []uintptr
}

func newGroup(key GroupKey, name string) *Group {
	return &Group{Key: key, Name: name, instances: make(map[uintptr]*Instance)}
}

func (g *Group) put(inst *Instance) {
	if _, exists := g.instances[inst.Key]; !exists {
		g.order = append(g.order, inst.Key)
	}
	g.instances[inst.Key] = inst
}

// sweep drops collected instances and returns how many were removed
func (g *Group) sweep() int {
	kept := g.order[:0]
	removed := 0
	for _, key := range g.order {
		if g.instances[key].Alive() {
			kept = append(kept, key)
			continue
		}
		delete(g.instances, key)
		removed++
	}
	g.order = kept
	return removed
}

// Len returns the number of instances in the group
func (g *Group) Len() int {
	return len(g.order)
}

// Options configures a registry
type Options struct {
	Logger *log.Logger
}

// Registry tracks instances by group and by class
type Registry struct {
	groups  map[GroupKey]*Group
	order   []GroupKey
	classes map[string][]*Instance
	logger  *log.Logger
	mutex   sync.Mutex

	staticSeq uintptr
}

// New creates an empty instance registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	return &Registry{
		groups:  make(map[GroupKey]*Group),
		classes: make(map[string][]*Instance),
		logger:  opts.Logger.WithField("component", "console-instances"),
	}
}

// Add tracks obj as an instance of className. Adding an object that is
// already tracked in the group is a no-op; an entry whose object has been
// collected is replaced. It reports whether obj was added.
func Add[T any](r *Registry, className string, obj *T, owner Owner) (*Instance, bool) {
	if obj == nil || mdwstringx.IsBlank(className) {
		return nil, false
	}

	wp := weak.Make(obj)
	inst := &Instance{
		Class: className,
		Key:   reflect.ValueOf(obj).Pointer(),
		value: func() (any, bool) {
			if p := wp.Value(); p != nil {
				return p, true
			}
			return nil, false
		},
	}
	return r.add(inst, owner)
}

func (r *Registry) add(inst *Instance, owner Owner) (*Instance, bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	group := r.group(owner)
	if existing, ok := group.instances[inst.Key]; ok {
		if existing.Alive() {
			return existing, false
		}
		r.unindex(existing)
	}

	r.addLocked(inst, group)
	return inst, true
}

func (r *Registry) addLocked(inst *Instance, group *Group) {
	group.put(inst)
	r.classes[inst.Class] = append(r.classes[inst.Class], inst)

	r.logger.Debug("Instance added", log.Fields{
		"class": inst.Class,
		"group": group.Name,
	})
}

// group returns the group for owner, creating it on first use
func (r *Registry) group(owner Owner) *Group {
	if g, ok := r.groups[owner.Key]; ok {
		return g
	}

	name := owner.Name
	switch {
	case owner.Key == UngroupedKey:
		name = UngroupedName
	case owner.Key == StaticKey:
		name = StaticName
	case mdwstringx.IsBlank(name):
		name = fmt.Sprintf("Group %#x", uintptr(owner.Key))
	}

	g := newGroup(owner.Key, name)
	r.groups[owner.Key] = g
	r.order = append(r.order, owner.Key)
	return g
}

func (r *Registry) unindex(inst *Instance) {
	list := r.classes[inst.Class]
	for i, candidate := range list {
		if candidate == inst {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(r.classes, inst.Class)
		return
	}
	r.classes[inst.Class] = list
}

// AddStatic tracks a static type. Static types are never pruned. It
// reports false if className is already present.
func (r *Registry) AddStatic(className string) bool {
	if mdwstringx.IsBlank(className) {
		return false
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	group := r.group(Owner{Key: StaticKey})
	for _, key := range group.order {
		if group.instances[key].Class == className {
			return false
		}
	}

	// Static entries have no object; the key is a sequence number
	r.staticSeq++
	r.addLocked(&Instance{Class: className, Key: r.staticSeq, Static: true}, group)
	return true
}

// IsStatic reports whether className was registered as a static type
func (r *Registry) IsStatic(className string) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	for _, inst := range r.classes[className] {
		if inst.Static {
			return true
		}
	}
	return false
}

// Live returns strong references to the live objects of className in
// tracking order. Collected entries of that class are pruned first.
func (r *Registry) Live(className string) []any {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var (
		live []any
		dead []*Instance
	)
	for _, inst := range r.classes[className] {
		if inst.Static {
			continue
		}
		if v, ok := inst.Value(); ok {
			live = append(live, v)
		} else {
			dead = append(dead, inst)
		}
	}

	for _, inst := range dead {
		r.remove(inst)
	}
	return live
}

// remove drops a single instance from its group and the class index
func (r *Registry) remove(inst *Instance) {
	for _, key := range r.order {
		g := r.groups[key]
		if g.instances[inst.Key] != inst {
			continue
		}
		delete(g.instances, inst.Key)
		for i, k := range g.order {
			if k == inst.Key {
				g.order = append(g.order[:i], g.order[i+1:]...)
				break
			}
		}
		if g.Len() == 0 {
			r.dropGroup(key)
		}
		break
	}
	r.unindex(inst)
}

func (r *Registry) dropGroup(key GroupKey) {
	delete(r.groups, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Clean removes collected instances from every group, drops groups that
// became empty, and compacts the class index. It returns the number of
// instances removed.
func (r *Registry) Clean() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	removed := 0
	for _, key := range append([]GroupKey(nil), r.order...) {
		if key == StaticKey {
			continue
		}
		g := r.groups[key]
		removed += g.sweep()
		if g.Len() == 0 {
			r.dropGroup(key)
		}
	}

	for class, list := range r.classes {
		kept := list[:0]
		for _, inst := range list {
			if inst.Alive() {
				kept = append(kept, inst)
			}
		}
		if len(kept) == 0 {
			delete(r.classes, class)
		} else {
			r.classes[class] = kept
		}
	}

	r.logger.Debug("Instances cleaned", log.Fields{
		"removed": removed,
		"groups":  len(r.order),
	})
	return removed
}

// Count returns the number of tracked entries, static types included
func (r *Registry) Count() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	n := 0
	for _, g := range r.groups {
		n += g.Len()
	}
	return n
}

// ClassSnapshot lists the live objects of one class within a group
type ClassSnapshot struct {
	Class   string
	Static  bool
	Objects []any
}

// GroupSnapshot is a point-in-time view of one group
type GroupSnapshot struct {
	Key     GroupKey
	Name    string
	Classes []ClassSnapshot
}

// Groups returns a snapshot of all groups in creation order. Classes are
// listed in the order they were first tracked; collected objects are
// skipped.
func (r *Registry) Groups() []GroupSnapshot {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	out := make([]GroupSnapshot, 0, len(r.order))
	for _, key := range r.order {
		g := r.groups[key]
		snap := GroupSnapshot{Key: g.Key, Name: g.Name}
		index := make(map[string]int)

		for _, k := range g.order {
			inst := g.instances[k]
			i, seen := index[inst.Class]
			if !seen {
				i = len(snap.Classes)
				index[inst.Class] = i
				snap.Classes = append(snap.Classes, ClassSnapshot{Class: inst.Class, Static: inst.Static})
			}
			if v, ok := inst.Value(); ok {
				snap.Classes[i].Objects = append(snap.Classes[i].Objects, v)
			}
		}
		out = append(out, snap)
	}
	return out
}
