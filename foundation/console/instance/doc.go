// Package instance tracks the live objects console commands run on.
//
// Package: instance
// Title: Weak Instance Registry
// Description: Objects are registered with their class name and an optional
//              owner. The registry holds them through weak.Pointer, so an
//              object that the host drops is collected normally and pruned
//              from the registry the next time its class is resolved or
//              Clean runs. Instances are bucketed into groups by owner key;
//              key 0 is the ungrouped bucket and key 1 holds static types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	reg := instance.New(instance.Options{})
//	instance.Add(reg, "Cube", cube, instance.OwnerOf(scene, "Scene"))
//	for _, obj := range reg.Live("Cube") {
//		obj.(*Cube).Explode()
//	}
package instance
