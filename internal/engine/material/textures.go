package material

// TextureSet names an asset path per channel. Empty paths are skipped.
type TextureSet struct {
	Map         string `yaml:"map"`
	BumpMap     string `yaml:"bump_map"`
	SpecularMap string `yaml:"specular_map"`
	NormalMap   string `yaml:"normal_map"`
	EmissiveMap string `yaml:"emissive_map"`
	AlphaMap    string `yaml:"alpha_map"`
}

// ChannelPath pairs a texture slot with the asset that fills it.
type ChannelPath struct {
	Channel Channel
	Path    string
}

// Paths returns the non-empty entries in channel order.
func (s TextureSet) Paths() []ChannelPath {
	all := [channelCount]string{s.Map, s.BumpMap, s.SpecularMap, s.NormalMap, s.EmissiveMap, s.AlphaMap}
	var out []ChannelPath
	for ch, p := range all {
		if p != "" {
			out = append(out, ChannelPath{Channel: Channel(ch), Path: p})
		}
	}
	return out
}

// Empty reports whether no channel has a path.
func (s TextureSet) Empty() bool {
	return s == TextureSet{}
}
