package nodes

import "github.com/matzehuels/shadercopy/pkg/shader"

// Socket and property layouts follow the host's 4.x node definitions.
// Only the sockets and properties listed here take part in conversion.

const (
	TypeOutputMaterial  = "ShaderNodeOutputMaterial"
	TypeBsdfPrincipled  = "ShaderNodeBsdfPrincipled"
	TypeBsdfDiffuse     = "ShaderNodeBsdfDiffuse"
	TypeBsdfGlossy      = "ShaderNodeBsdfGlossy"
	TypeBsdfGlass       = "ShaderNodeBsdfGlass"
	TypeBsdfTransparent = "ShaderNodeBsdfTransparent"
	TypeEmission        = "ShaderNodeEmission"
	TypeMixShader       = "ShaderNodeMixShader"
	TypeAddShader       = "ShaderNodeAddShader"
	TypeRGB             = "ShaderNodeRGB"
	TypeValue           = "ShaderNodeValue"
	TypeMath            = "ShaderNodeMath"
	TypeVectorMath      = "ShaderNodeVectorMath"
	TypeMixRGB          = "ShaderNodeMixRGB"
	TypeInvert          = "ShaderNodeInvert"
	TypeHueSaturation   = "ShaderNodeHueSaturation"
	TypeBrightContrast  = "ShaderNodeBrightContrast"
	TypeGamma           = "ShaderNodeGamma"
	TypeRGBToBW         = "ShaderNodeRGBToBW"
	TypeClamp           = "ShaderNodeClamp"
	TypeMapRange        = "ShaderNodeMapRange"
	TypeTexCoord        = "ShaderNodeTexCoord"
	TypeMapping         = "ShaderNodeMapping"
	TypeTexImage        = "ShaderNodeTexImage"
	TypeTexNoise        = "ShaderNodeTexNoise"
	TypeTexChecker      = "ShaderNodeTexChecker"
	TypeNormalMap       = "ShaderNodeNormalMap"
	TypeBump            = "ShaderNodeBump"
	TypeDisplacement    = "ShaderNodeDisplacement"
	TypeFresnel         = "ShaderNodeFresnel"
	TypeLayerWeight     = "ShaderNodeLayerWeight"
	TypeSeparateColor   = "ShaderNodeSeparateColor"
	TypeCombineColor    = "ShaderNodeCombineColor"
)

var (
	white = shader.Color{1, 1, 1, 1}
	grey  = shader.Color{0.8, 0.8, 0.8, 1}
	mid   = shader.Color{0.5, 0.5, 0.5, 1}
	zero3 = shader.Vector{0, 0, 0}
)

func in(name string, kind shader.SocketKind, def any) SocketDef {
	return SocketDef{Name: name, Kind: kind, Default: def}
}

func inID(name, id string, kind shader.SocketKind, def any) SocketDef {
	return SocketDef{Name: name, Identifier: id, Kind: kind, Default: def}
}

func out(name string, kind shader.SocketKind) SocketDef {
	return SocketDef{Name: name, Kind: kind}
}

func float(name string, def float64) SocketDef { return in(name, shader.KindFloat, def) }
func color(name string, def shader.Color) SocketDef {
	return in(name, shader.KindColor, def)
}
func vector(name string, def shader.Vector) SocketDef {
	return in(name, shader.KindVector, def)
}
func closure(name, id string) SocketDef { return inID(name, id, shader.KindShader, nil) }

var (
	mathOperations = []string{
		"ADD", "SUBTRACT", "MULTIPLY", "DIVIDE", "MULTIPLY_ADD", "POWER", "LOGARITHM",
		"SQRT", "INVERSE_SQRT", "ABSOLUTE", "EXPONENT", "MINIMUM", "MAXIMUM",
		"LESS_THAN", "GREATER_THAN", "SIGN", "COMPARE", "SMOOTH_MIN", "SMOOTH_MAX",
		"ROUND", "FLOOR", "CEIL", "TRUNC", "FRACT", "MODULO", "FLOORED_MODULO",
		"WRAP", "SNAP", "PINGPONG", "SINE", "COSINE", "TANGENT", "ARCSINE",
		"ARCCOSINE", "ARCTANGENT", "ARCTAN2", "SINH", "COSH", "TANH", "RADIANS", "DEGREES",
	}
	vectorOperations = []string{
		"ADD", "SUBTRACT", "MULTIPLY", "DIVIDE", "MULTIPLY_ADD", "CROSS_PRODUCT",
		"PROJECT", "REFLECT", "REFRACT", "FACEFORWARD", "DOT_PRODUCT", "DISTANCE",
		"LENGTH", "SCALE", "NORMALIZE", "ABSOLUTE", "MINIMUM", "MAXIMUM", "FLOOR",
		"CEIL", "FRACTION", "MODULO", "WRAP", "SNAP", "SINE", "COSINE", "TANGENT",
	}
	blendTypes = []string{
		"MIX", "DARKEN", "MULTIPLY", "BURN", "LIGHTEN", "SCREEN", "DODGE", "ADD",
		"OVERLAY", "SOFT_LIGHT", "LINEAR_LIGHT", "DIFFERENCE", "EXCLUSION",
		"SUBTRACT", "DIVIDE", "HUE", "SATURATION", "COLOR", "VALUE",
	}
	colorModes = []string{"RGB", "HSV", "HSL"}
)

var builtinTypes = []TypeDef{
	{
		Type:  TypeOutputMaterial,
		Label: "Material Output",
		Inputs: []SocketDef{
			closure("Surface", ""),
			closure("Volume", ""),
			vector("Displacement", zero3),
			float("Thickness", 0),
		},
		Properties: []Property{
			enum("target", "ALL", "ALL", "EEVEE", "CYCLES"),
			flag("is_active_output", true),
		},
	},
	{
		Type:  TypeBsdfPrincipled,
		Label: "Principled BSDF",
		Inputs: []SocketDef{
			color("Base Color", grey),
			float("Metallic", 0),
			float("Roughness", 0.5),
			float("IOR", 1.5),
			float("Alpha", 1),
			vector("Normal", zero3),
			float("Subsurface Weight", 0),
			vector("Subsurface Radius", shader.Vector{1, 0.2, 0.1}),
			float("Subsurface Scale", 0.05),
			float("Specular IOR Level", 0.5),
			color("Specular Tint", white),
			float("Anisotropic", 0),
			float("Anisotropic Rotation", 0),
			vector("Tangent", zero3),
			float("Transmission Weight", 0),
			float("Coat Weight", 0),
			float("Coat Roughness", 0.03),
			float("Coat IOR", 1.5),
			color("Coat Tint", white),
			vector("Coat Normal", zero3),
			float("Sheen Weight", 0),
			float("Sheen Roughness", 0.5),
			color("Sheen Tint", white),
			color("Emission Color", white),
			float("Emission Strength", 0),
		},
		Outputs: []SocketDef{out("BSDF", shader.KindShader)},
		Properties: []Property{
			enum("distribution", "MULTI_GGX", "GGX", "MULTI_GGX"),
			enum("subsurface_method", "RANDOM_WALK", "BURLEY", "RANDOM_WALK", "RANDOM_WALK_SKIN"),
		},
	},
	{
		Type:  TypeBsdfDiffuse,
		Label: "Diffuse BSDF",
		Inputs: []SocketDef{
			color("Color", grey),
			float("Roughness", 0),
			vector("Normal", zero3),
		},
		Outputs: []SocketDef{out("BSDF", shader.KindShader)},
	},
	{
		Type:  TypeBsdfGlossy,
		Label: "Glossy BSDF",
		Inputs: []SocketDef{
			color("Color", grey),
			float("Roughness", 0.5),
			float("Anisotropy", 0),
			float("Rotation", 0),
			vector("Normal", zero3),
			vector("Tangent", zero3),
		},
		Outputs: []SocketDef{out("BSDF", shader.KindShader)},
		Properties: []Property{
			enum("distribution", "MULTI_GGX", "BECKMANN", "GGX", "ASHIKHMIN_SHIRLEY", "MULTI_GGX"),
		},
	},
	{
		Type:  TypeBsdfGlass,
		Label: "Glass BSDF",
		Inputs: []SocketDef{
			color("Color", white),
			float("Roughness", 0),
			float("IOR", 1.5),
			vector("Normal", zero3),
		},
		Outputs: []SocketDef{out("BSDF", shader.KindShader)},
		Properties: []Property{
			enum("distribution", "MULTI_GGX", "BECKMANN", "GGX", "MULTI_GGX"),
		},
	},
	{
		Type:    TypeBsdfTransparent,
		Label:   "Transparent BSDF",
		Inputs:  []SocketDef{color("Color", white)},
		Outputs: []SocketDef{out("BSDF", shader.KindShader)},
	},
	{
		Type:  TypeEmission,
		Label: "Emission",
		Inputs: []SocketDef{
			color("Color", white),
			float("Strength", 1),
		},
		Outputs: []SocketDef{out("Emission", shader.KindShader)},
	},
	{
		Type:  TypeMixShader,
		Label: "Mix Shader",
		Inputs: []SocketDef{
			float("Fac", 0.5),
			closure("Shader", ""),
			closure("Shader", "Shader_001"),
		},
		Outputs: []SocketDef{out("Shader", shader.KindShader)},
	},
	{
		Type:  TypeAddShader,
		Label: "Add Shader",
		Inputs: []SocketDef{
			closure("Shader", ""),
			closure("Shader", "Shader_001"),
		},
		Outputs: []SocketDef{out("Shader", shader.KindShader)},
	},
	{
		Type:       TypeRGB,
		Label:      "RGB",
		Outputs:    []SocketDef{out("Color", shader.KindColor)},
		Properties: []Property{value("color", shader.KindColor, mid)},
	},
	{
		Type:       TypeValue,
		Label:      "Value",
		Outputs:    []SocketDef{out("Value", shader.KindFloat)},
		Properties: []Property{value("value", shader.KindFloat, 0.5)},
	},
	{
		Type:  TypeMath,
		Label: "Math",
		Inputs: []SocketDef{
			float("Value", 0.5),
			inID("Value", "Value_001", shader.KindFloat, 0.5),
			inID("Value", "Value_002", shader.KindFloat, 0.5),
		},
		Outputs: []SocketDef{out("Value", shader.KindFloat)},
		Properties: []Property{
			enum("operation", "ADD", mathOperations...),
			flag("use_clamp", false),
		},
	},
	{
		Type:  TypeVectorMath,
		Label: "Vector Math",
		Inputs: []SocketDef{
			vector("Vector", zero3),
			inID("Vector", "Vector_001", shader.KindVector, zero3),
			inID("Vector", "Vector_002", shader.KindVector, zero3),
			float("Scale", 1),
		},
		Outputs: []SocketDef{
			out("Vector", shader.KindVector),
			out("Value", shader.KindFloat),
		},
		Properties: []Property{
			enum("operation", "ADD", vectorOperations...),
		},
	},
	{
		Type:  TypeMixRGB,
		Label: "Mix",
		Inputs: []SocketDef{
			float("Fac", 0.5),
			color("Color1", mid),
			color("Color2", mid),
		},
		Outputs: []SocketDef{out("Color", shader.KindColor)},
		Properties: []Property{
			enum("blend_type", "MIX", blendTypes...),
			flag("use_clamp", false),
		},
	},
	{
		Type:  TypeInvert,
		Label: "Invert Color",
		Inputs: []SocketDef{
			float("Fac", 1),
			color("Color", shader.Color{0, 0, 0, 1}),
		},
		Outputs: []SocketDef{out("Color", shader.KindColor)},
	},
	{
		Type:  TypeHueSaturation,
		Label: "Hue/Saturation/Value",
		Inputs: []SocketDef{
			float("Hue", 0.5),
			float("Saturation", 1),
			float("Value", 1),
			float("Fac", 1),
			color("Color", grey),
		},
		Outputs: []SocketDef{out("Color", shader.KindColor)},
	},
	{
		Type:  TypeBrightContrast,
		Label: "Brightness/Contrast",
		Inputs: []SocketDef{
			color("Color", white),
			float("Bright", 0),
			float("Contrast", 0),
		},
		Outputs: []SocketDef{out("Color", shader.KindColor)},
	},
	{
		Type:  TypeGamma,
		Label: "Gamma",
		Inputs: []SocketDef{
			color("Color", white),
			float("Gamma", 1),
		},
		Outputs: []SocketDef{out("Color", shader.KindColor)},
	},
	{
		Type:    TypeRGBToBW,
		Label:   "RGB to BW",
		Inputs:  []SocketDef{color("Color", mid)},
		Outputs: []SocketDef{out("Val", shader.KindFloat)},
	},
	{
		Type:  TypeClamp,
		Label: "Clamp",
		Inputs: []SocketDef{
			float("Value", 1),
			float("Min", 0),
			float("Max", 1),
		},
		Outputs: []SocketDef{out("Result", shader.KindFloat)},
		Properties: []Property{
			enum("clamp_type", "MINMAX", "MINMAX", "RANGE"),
		},
	},
	{
		Type:  TypeMapRange,
		Label: "Map Range",
		Inputs: []SocketDef{
			float("Value", 1),
			float("From Min", 0),
			float("From Max", 1),
			float("To Min", 0),
			float("To Max", 1),
			float("Steps", 4),
		},
		Outputs: []SocketDef{out("Result", shader.KindFloat)},
		Properties: []Property{
			enum("interpolation_type", "LINEAR", "LINEAR", "STEPPED", "SMOOTHSTEP", "SMOOTHERSTEP"),
			flag("clamp", true),
		},
	},
	{
		Type:  TypeTexCoord,
		Label: "Texture Coordinate",
		Outputs: []SocketDef{
			out("Generated", shader.KindVector),
			out("Normal", shader.KindVector),
			out("UV", shader.KindVector),
			out("Object", shader.KindVector),
			out("Camera", shader.KindVector),
			out("Window", shader.KindVector),
			out("Reflection", shader.KindVector),
		},
		Properties: []Property{flag("from_instancer", false)},
	},
	{
		Type:  TypeMapping,
		Label: "Mapping",
		Inputs: []SocketDef{
			vector("Vector", zero3),
			vector("Location", zero3),
			vector("Rotation", zero3),
			vector("Scale", shader.Vector{1, 1, 1}),
		},
		Outputs: []SocketDef{out("Vector", shader.KindVector)},
		Properties: []Property{
			enum("vector_type", "POINT", "POINT", "TEXTURE", "VECTOR", "NORMAL"),
		},
	},
	{
		Type:   TypeTexImage,
		Label:  "Image Texture",
		Inputs: []SocketDef{vector("Vector", zero3)},
		Outputs: []SocketDef{
			out("Color", shader.KindColor),
			out("Alpha", shader.KindFloat),
		},
		Properties: []Property{
			text("image", ""),
			enum("interpolation", "Linear", "Linear", "Closest", "Cubic", "Smart"),
			enum("projection", "FLAT", "FLAT", "BOX", "SPHERE", "TUBE"),
			enum("extension", "REPEAT", "REPEAT", "EXTEND", "CLIP", "MIRROR"),
		},
	},
	{
		Type:  TypeTexNoise,
		Label: "Noise Texture",
		Inputs: []SocketDef{
			vector("Vector", zero3),
			float("W", 0),
			float("Scale", 5),
			float("Detail", 2),
			float("Roughness", 0.5),
			float("Lacunarity", 2),
			float("Distortion", 0),
		},
		Outputs: []SocketDef{
			out("Fac", shader.KindFloat),
			out("Color", shader.KindColor),
		},
		Properties: []Property{
			enum("noise_dimensions", "3D", "1D", "2D", "3D", "4D"),
			flag("normalize", true),
		},
	},
	{
		Type:  TypeTexChecker,
		Label: "Checker Texture",
		Inputs: []SocketDef{
			vector("Vector", zero3),
			color("Color1", grey),
			color("Color2", shader.Color{0.2, 0.2, 0.2, 1}),
			float("Scale", 5),
		},
		Outputs: []SocketDef{
			out("Color", shader.KindColor),
			out("Fac", shader.KindFloat),
		},
	},
	{
		Type:  TypeNormalMap,
		Label: "Normal Map",
		Inputs: []SocketDef{
			float("Strength", 1),
			color("Color", shader.Color{0.5, 0.5, 1, 1}),
		},
		Outputs: []SocketDef{out("Normal", shader.KindVector)},
		Properties: []Property{
			enum("space", "TANGENT", "TANGENT", "OBJECT", "WORLD", "BLENDER_OBJECT", "BLENDER_WORLD"),
		},
	},
	{
		Type:  TypeBump,
		Label: "Bump",
		Inputs: []SocketDef{
			float("Strength", 1),
			float("Distance", 1),
			float("Height", 1),
			vector("Normal", zero3),
		},
		Outputs:    []SocketDef{out("Normal", shader.KindVector)},
		Properties: []Property{flag("invert", false)},
	},
	{
		Type:  TypeDisplacement,
		Label: "Displacement",
		Inputs: []SocketDef{
			float("Height", 0),
			float("Midlevel", 0.5),
			float("Scale", 1),
			vector("Normal", zero3),
		},
		Outputs: []SocketDef{out("Displacement", shader.KindVector)},
		Properties: []Property{
			enum("space", "OBJECT", "OBJECT", "WORLD"),
		},
	},
	{
		Type:  TypeFresnel,
		Label: "Fresnel",
		Inputs: []SocketDef{
			float("IOR", 1.5),
			vector("Normal", zero3),
		},
		Outputs: []SocketDef{out("Fac", shader.KindFloat)},
	},
	{
		Type:  TypeLayerWeight,
		Label: "Layer Weight",
		Inputs: []SocketDef{
			float("Blend", 0.5),
			vector("Normal", zero3),
		},
		Outputs: []SocketDef{
			out("Fresnel", shader.KindFloat),
			out("Facing", shader.KindFloat),
		},
	},
	{
		Type:   TypeSeparateColor,
		Label:  "Separate Color",
		Inputs: []SocketDef{color("Color", grey)},
		Outputs: []SocketDef{
			out("Red", shader.KindFloat),
			out("Green", shader.KindFloat),
			out("Blue", shader.KindFloat),
		},
		Properties: []Property{enum("mode", "RGB", colorModes...)},
	},
	{
		Type:  TypeCombineColor,
		Label: "Combine Color",
		Inputs: []SocketDef{
			float("Red", 0),
			float("Green", 0),
			float("Blue", 0),
		},
		Outputs:    []SocketDef{out("Color", shader.KindColor)},
		Properties: []Property{enum("mode", "RGB", colorModes...)},
	},
}
