package ecs

import (
	"reflect"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// singletonEntry holds the single heap allocation backing a singleton component.
// The pointer is stable for the lifetime of the storage, so accessors may cache it.
type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// Storage holds the component state systems operate on
type Storage struct {
	singletons *intmap.Map[uintptr, *singletonEntry]
}

// NewStorage creates a new, empty ECS storage
func NewStorage() *Storage {
	return &Storage{
		singletons: intmap.New[uintptr, *singletonEntry](16),
	}
}

// AddSingleton stores a copy of component as the singleton for its type.
// If a singleton of that type already exists its value is overwritten in place,
// so previously obtained pointers observe the new value.
func (s *Storage) AddSingleton(component any) {
	compType := reflect.TypeOf(component)
	if compType == nil {
		panic("cannot add a nil singleton")
	}

	value := reflect.ValueOf(component)
	if compType.Kind() == reflect.Ptr {
		compType = compType.Elem()
		value = value.Elem()
	}

	if entry := s.getSingletonEntry(compType); entry != nil {
		reflect.NewAt(compType, entry.dataPtr).Elem().Set(value)
		return
	}

	ptr := reflect.New(compType)
	ptr.Elem().Set(value)

	s.singletons.Put(typeId(compType), &singletonEntry{
		typ:     compType,
		dataPtr: ptr.UnsafePointer(),
	})
}

// RemoveSingleton drops the singleton of the given type. Pointers handed out
// earlier keep the old value alive but are no longer seen by the storage.
func (s *Storage) RemoveSingleton(compType reflect.Type) bool {
	return s.singletons.Del(typeId(compType))
}

// ReadSingleton fills target, which must be a **T, with a pointer to the stored
// singleton of type T. Returns false when no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr || targetValue.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	compType := targetValue.Type().Elem().Elem()
	entry := s.getSingletonEntry(compType)
	if entry == nil {
		return false
	}

	targetValue.Elem().Set(reflect.NewAt(compType, entry.dataPtr))
	return true
}

// SingletonCount returns the number of singletons currently stored
func (s *Storage) SingletonCount() int {
	return s.singletons.Len()
}

func (s *Storage) getSingletonEntry(compType reflect.Type) *singletonEntry {
	entry, ok := s.singletons.Get(typeId(compType))
	if !ok {
		return nil
	}
	return entry
}

// typeId returns the address of the runtime type descriptor, unique per type
func typeId(t reflect.Type) uintptr {
	return uintptr((*iface)(unsafe.Pointer(&t)).data)
}

// ReadSingletonValue returns a pointer to the singleton of type T, or nil
func ReadSingletonValue[T any](storage *Storage) *T {
	var out *T
	if !storage.ReadSingleton(&out) {
		return nil
	}
	return out
}

// iface mirrors the runtime layout of a non-empty interface value
type iface struct {
	tab  unsafe.Pointer
	data unsafe.Pointer
}
