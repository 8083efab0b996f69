package host

import (
	"context"

	"github.com/matzehuels/shadercopy/pkg/nodes"
	"github.com/matzehuels/shadercopy/pkg/shader"
)

// DemoMaterialName is the name used by [CreateDemoMaterial] when none is given.
const DemoMaterialName = "Test_Material"

// CreateDemoMaterial creates a small orange metallic material in repo: a
// Principled BSDF at (0, 0) feeding a Material Output at (400, 0). It is the
// fixture used to try a round trip without a host application.
func CreateDemoMaterial(ctx context.Context, repo Repository, name string) (*shader.Material, error) {
	if name == "" {
		name = DemoMaterialName
	}
	m, err := repo.CreateMaterial(ctx, name)
	if err != nil {
		return nil, err
	}
	m.UseNodes = true
	m.Tree.Clear()

	output, err := repo.CreateNode(ctx, m, nodes.TypeOutputMaterial)
	if err != nil {
		return nil, err
	}
	output.Location = shader.Location{X: 400, Y: 0}

	bsdf, err := repo.CreateNode(ctx, m, nodes.TypeBsdfPrincipled)
	if err != nil {
		return nil, err
	}
	bsdf.Location = shader.Location{X: 0, Y: 0}
	bsdf.Input("Base Color").Value = shader.Color{1.0, 0.5, 0.0, 1.0}
	bsdf.Input("Metallic").Value = 0.8
	bsdf.Input("Roughness").Value = 0.2

	if _, err := repo.Link(ctx, m, bsdf.Output("BSDF"), output.Input("Surface")); err != nil {
		return nil, err
	}
	if err := repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
