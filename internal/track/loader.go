package track

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeLayout parses a YAML track file. Missing keys decode as empty
// sequences; anything that is not a mapping of numeric sequences is an error.
func DecodeLayout(data []byte) (TrackLayout, error) {
	var l TrackLayout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return TrackLayout{}, fmt.Errorf("failed to parse track file: %w", err)
	}
	if err := l.Validate(); err != nil {
		return TrackLayout{}, fmt.Errorf("invalid track file: %w", err)
	}
	return l, nil
}

// EncodeLayout renders a layout as YAML with one flow-style [x, y] pair per line.
func EncodeLayout(l TrackLayout) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	doc.Content = append(doc.Content,
		keyNode("cones_left"), pairsNode(l.ConesLeft),
		keyNode("cones_right"), pairsNode(l.ConesRight),
		keyNode("starting_pose"), floatsNode(l.StartingPose),
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode track file: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadLayoutFile reads and decodes a track file.
func ReadLayoutFile(path string) (TrackLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TrackLayout{}, err
	}
	return DecodeLayout(data)
}

// WriteLayoutFile encodes l and writes it to path.
func WriteLayoutFile(path string, l TrackLayout) error {
	data, err := EncodeLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func keyNode(key string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
}

func pairsNode(pairs [][]float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if len(pairs) == 0 {
		n.Style = yaml.FlowStyle
	}
	for _, p := range pairs {
		n.Content = append(n.Content, floatsNode(p))
	}
	return n
}

func floatsNode(values []float64) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, v := range values {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(v)})
	}
	return n
}

// formatFloat always keeps a decimal point so values read back as floats.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
