// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms lit and unlit meshes.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades meshes with up to four lights and the
// material's texture channels.
//
//go:embed phong.frag
var PhongFragmentShader string

// LineVertexShader transforms line points.
//
//go:embed line.vert
var LineVertexShader string

// LineFragmentShader draws lines in a flat colour.
//
//go:embed line.frag
var LineFragmentShader string
