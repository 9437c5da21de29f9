package renderer

import (
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/geometry"
	"github.com/Faultbox/orrery/internal/engine/scenegraph"
	"github.com/Faultbox/orrery/internal/engine/texture"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type gpuMesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
}

func (g *gpuMesh) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
	gl.DeleteBuffers(1, &g.ebo)
}

type gpuLine struct {
	vao, vbo uint32
	count    int32
}

func (g *gpuLine) delete() {
	gl.DeleteVertexArrays(1, &g.vao)
	gl.DeleteBuffers(1, &g.vbo)
}

// mesh returns the GPU buffers for geo, uploading them on first use.
func (r *Renderer) mesh(geo *geometry.Geometry) *gpuMesh {
	if g, ok := r.meshes[geo]; ok {
		return g
	}
	g := &gpuMesh{indexCount: int32(len(geo.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(geo.Vertices)*4, gl.Ptr(geo.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(geo.Indices)*4, gl.Ptr(geo.Indices), gl.STATIC_DRAW)

	stride := int32(geometry.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.meshes[geo] = g
	r.log.Debug("mesh uploaded",
		zap.String("name", geo.Name),
		zap.Int("vertices", geo.VertexCount()),
		zap.Int32("indices", g.indexCount),
	)
	return g
}

// lineBuffer returns the GPU buffer for a line. Lines are re-uploaded when
// their point count changes.
func (r *Renderer) lineBuffer(line *scenegraph.Line) *gpuLine {
	g, ok := r.lines[line]
	if ok && int(g.count) == len(line.Points) {
		return g
	}
	if !ok {
		g = &gpuLine{}
		gl.GenVertexArrays(1, &g.vao)
		gl.GenBuffers(1, &g.vbo)
		r.lines[line] = g
	}
	g.count = int32(len(line.Points))

	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	// Vec3 is three packed float32s.
	gl.BufferData(gl.ARRAY_BUFFER, len(line.Points)*12, unsafe.Pointer(&line.Points[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 12, 0)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return g
}

// texture returns the GL texture for img, uploading it on first use.
func (r *Renderer) texture(img *texture.Image) uint32 {
	if tex, ok := r.textures[img]; ok {
		return tex
	}
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	r.textures[img] = tex
	r.log.Debug("texture uploaded",
		zap.String("name", img.Name),
		zap.Int("width", img.Width),
		zap.Int("height", img.Height),
	)
	return tex
}
