// Package fixedgl is a small software renderer with a fixed-function, immediate-mode API.
//
// It mirrors the classic pipeline closely enough for simple scenes: two matrix stacks
// (projection and modelview), one light with ambient/diffuse/specular terms, per-vertex
// lighting, a depth buffer and Gouraud-shaded triangle fill.
//
// Pipeline (fixed):
//
//	Begin/Vertex/End → ModelView → Lighting → Projection → Clip → Rasterize → Target.
//
// Geometry is submitted vertex by vertex between Begin and End. Quads are split into two
// triangles. A Context is not safe for concurrent use; drive it from one goroutine.
package fixedgl
