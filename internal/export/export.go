// Package export writes generated caves to disk.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/cavemesh/internal/cave"
	"github.com/Faultbox/cavemesh/internal/config"
	"github.com/Faultbox/cavemesh/internal/engine/marching"
)

// NamedMesh pairs a mesh with its OBJ object name.
type NamedMesh struct {
	Name string
	Mesh *marching.Mesh
}

// WriteOBJ writes meshes as Wavefront OBJ objects with vertex normals.
// Face indices are 1-based and offset across objects.
func WriteOBJ(w io.Writer, meshes ...NamedMesh) error {
	bw := bufio.NewWriter(w)

	offset := 1
	for _, nm := range meshes {
		m := nm.Mesh
		fmt.Fprintf(bw, "o %s\n", nm.Name)
		for _, v := range m.Vertices {
			fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
		}
		for _, n := range m.Normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
		}

		hasNormals := len(m.Normals) == len(m.Vertices)
		for i := 0; i+2 < len(m.Indices); i += 3 {
			a := int(m.Indices[i]) + offset
			b := int(m.Indices[i+1]) + offset
			c := int(m.Indices[i+2]) + offset
			if hasNormals {
				fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
			} else {
				fmt.Fprintf(bw, "f %d %d %d\n", a, b, c)
			}
		}
		offset += len(m.Vertices)
	}

	return bw.Flush()
}

// Manifest records how a cave was generated.
type Manifest struct {
	Generated time.Time         `yaml:"generated"`
	Map       config.MapConfig  `yaml:"map"`
	Mesh      config.MeshConfig `yaml:"mesh"`
	Stats     cave.Stats        `yaml:"stats"`
}

// NewManifest builds a manifest for res. The seed is the resolved one, so
// a random-seed run can be replayed.
func NewManifest(cfg *config.Config, res *cave.Result) Manifest {
	mapCfg := cfg.Map
	mapCfg.Seed = res.Seed
	mapCfg.UseRandomSeed = false
	return Manifest{
		Generated: time.Now().UTC(),
		Map:       mapCfg,
		Mesh:      cfg.Mesh,
		Stats:     res.Stats(),
	}
}

// WriteManifest writes m as YAML.
func WriteManifest(w io.Writer, m Manifest) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return enc.Close()
}

// Files lists the paths written by Save.
type Files struct {
	OBJ      string
	Map      string
	Manifest string
}

// Save writes <name>.obj and, depending on cfg.Output, <name>.txt and
// <name>.yaml into dir.
func Save(dir, name string, cfg *config.Config, res *cave.Result) (Files, error) {
	var files Files
	if err := os.MkdirAll(dir, 0755); err != nil {
		return files, err
	}

	files.OBJ = filepath.Join(dir, name+".obj")
	err := writeFile(files.OBJ, func(w io.Writer) error {
		return WriteOBJ(w,
			NamedMesh{Name: "floor", Mesh: res.Floor},
			NamedMesh{Name: "walls", Mesh: res.Walls},
		)
	})
	if err != nil {
		return files, fmt.Errorf("writing %s: %w", files.OBJ, err)
	}

	if cfg.Output.WriteMap {
		files.Map = filepath.Join(dir, name+".txt")
		if err := os.WriteFile(files.Map, []byte(res.Map.String()), 0644); err != nil {
			return files, fmt.Errorf("writing %s: %w", files.Map, err)
		}
	}

	if cfg.Output.WriteManifest {
		files.Manifest = filepath.Join(dir, name+".yaml")
		err := writeFile(files.Manifest, func(w io.Writer) error {
			return WriteManifest(w, NewManifest(cfg, res))
		})
		if err != nil {
			return files, fmt.Errorf("writing %s: %w", files.Manifest, err)
		}
	}

	return files, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
