// Package fluid describes the liquids a mix is blended from.
//
// A Fluid is an immutable value: a name, the volume available (ml), its
// concentration (mg/ml) and a taste tag. Every Fluid carries a Role decided
// at construction:
//
//   - RoleBase:   an unflavoured base or nicotine shot, built with NewBase.
//   - RoleFlavor: a flavouring concentrate, built with NewFlavor.
//
// The role is part of the value and cannot change afterwards, so code that
// needs "only bases" or "only flavours" filters on Role() instead of
// inspecting dynamic types.
//
// Usage:
//
//	shot := fluid.NewBase("shot 20mg", 100, 20)
//	berry := fluid.NewFlavor("berry", 30, 0, "strawberry")
//	if err := berry.Validate(); err != nil {
//		// handle fluid.ErrInvalidFluid
//	}
package fluid
