// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/joshunov/usyd-eihwam-calculator/internal/container"
)

// defaultImage is the conversion image used when none is configured.
const defaultImage = "pdftotext:latest"

// ContainerConverter pipes the PDF through a text-extraction container
// image, for hosts without a local pdftotext binary. It depends on a
// container.Runtime (docker or podman) injected at construction time.
type ContainerConverter struct {
	runtime container.Runtime
	image   string
}

// NewContainerConverter creates a converter that runs image under the
// given runtime. It verifies that the image exists locally before
// returning.
func NewContainerConverter(rt container.Runtime, image string) (*ContainerConverter, error) {
	if image == "" {
		image = defaultImage
	}
	if err := rt.ImageExists(image); err != nil {
		return nil, fmt.Errorf("conversion image not available in %s: %w", rt.Name(), err)
	}
	return &ContainerConverter{runtime: rt, image: image}, nil
}

// Convert reads the PDF at pdfPath, pipes it through the container, and
// returns the resulting text.
func (c *ContainerConverter) Convert(pdfPath string) (string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := c.runtime.Run(c.image, f, &out); err != nil {
		return "", fmt.Errorf("converting %s in container: %w", pdfPath, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("container conversion produced empty output for %s", pdfPath)
	}

	return out.String(), nil
}
