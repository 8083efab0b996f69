package nodes

import "strings"

// legacyTypes maps upper-case type names written by older exporters to
// current identifiers. Entries whose target is not registered still
// normalize, and are then reported as unsupported.
var legacyTypes = map[string]string{
	"OUTPUT_MATERIAL":       "ShaderNodeOutputMaterial",
	"BSDF_PRINCIPLED":       "ShaderNodeBsdfPrincipled",
	"TEX_IMAGE":             "ShaderNodeTexImage",
	"MIX_SHADER":            "ShaderNodeMixShader",
	"ADD_SHADER":            "ShaderNodeAddShader",
	"RGB":                   "ShaderNodeRGB",
	"VALUE":                 "ShaderNodeValue",
	"MATH":                  "ShaderNodeMath",
	"VECT_MATH":             "ShaderNodeVectorMath",
	"MIX_RGB":               "ShaderNodeMixRGB",
	"INVERT":                "ShaderNodeInvert",
	"SEPARATE_RGB":          "ShaderNodeSeparateRGB",
	"COMBINE_RGB":           "ShaderNodeCombineRGB",
	"SEPARATE_COLOR":        "ShaderNodeSeparateColor",
	"COMBINE_COLOR":         "ShaderNodeCombineColor",
	"HUE_SAT":               "ShaderNodeHueSaturation",
	"HUE_SATURATION":        "ShaderNodeHueSaturation",
	"BRIGHTCONTRAST":        "ShaderNodeBrightContrast",
	"BRIGHT_CONTRAST":       "ShaderNodeBrightContrast",
	"GAMMA":                 "ShaderNodeGamma",
	"CLAMP":                 "ShaderNodeClamp",
	"MAP_RANGE":             "ShaderNodeMapRange",
	"TEX_COORD":             "ShaderNodeTexCoord",
	"MAPPING":               "ShaderNodeMapping",
	"TEX_NOISE":             "ShaderNodeTexNoise",
	"TEX_CHECKER":           "ShaderNodeTexChecker",
	"TEX_GRADIENT":          "ShaderNodeTexGradient",
	"TEX_MAGIC":             "ShaderNodeTexMagic",
	"TEX_MUSGRAVE":          "ShaderNodeTexMusgrave",
	"TEX_VORONOI":           "ShaderNodeTexVoronoi",
	"TEX_WAVE":              "ShaderNodeTexWave",
	"NORMAL_MAP":            "ShaderNodeNormalMap",
	"BUMP":                  "ShaderNodeBump",
	"DISPLACEMENT":          "ShaderNodeDisplacement",
	"VECTOR_DISPLACEMENT":   "ShaderNodeVectorDisplacement",
	"NORMAL":                "ShaderNodeNormal",
	"CURVE_RGB":             "ShaderNodeRGBCurve",
	"CURVE_VEC":             "ShaderNodeVectorCurve",
	"VALTORGB":              "ShaderNodeValToRGB",
	"RGBTOBW":               "ShaderNodeRGBToBW",
	"LIGHT_PATH":            "ShaderNodeLightPath",
	"FRESNEL":               "ShaderNodeFresnel",
	"LAYER_WEIGHT":          "ShaderNodeLayerWeight",
	"CAMERA_DATA":           "ShaderNodeCameraData",
	"TANGENT":               "ShaderNodeTangent",
	"GEOMETRY":              "ShaderNodeNewGeometry",
	"HAIR_INFO":             "ShaderNodeHairInfo",
	"OBJECT_INFO":           "ShaderNodeObjectInfo",
	"PARTICLE_INFO":         "ShaderNodeParticleInfo",
	"TEX_ENVIRONMENT":       "ShaderNodeTexEnvironment",
	"TEX_SKY":               "ShaderNodeTexSky",
	"VOLUME_SCATTER":        "ShaderNodeVolumeScatter",
	"VOLUME_ABSORPTION":     "ShaderNodeVolumeAbsorption",
	"VOLUME_PRINCIPLED":     "ShaderNodeVolumePrincipled",
	"SUBSURFACE_SCATTERING": "ShaderNodeSubsurfaceScattering",
	"BSDF_GLASS":            "ShaderNodeBsdfGlass",
	"GLASS_BSDF":            "ShaderNodeBsdfGlass",
	"BSDF_TRANSPARENT":      "ShaderNodeBsdfTransparent",
	"TRANSPARENT_BSDF":      "ShaderNodeBsdfTransparent",
	"REFRACTION_BSDF":       "ShaderNodeBsdfRefraction",
	"BSDF_GLOSSY":           "ShaderNodeBsdfGlossy",
	"GLOSSY_BSDF":           "ShaderNodeBsdfGlossy",
	"BSDF_DIFFUSE":          "ShaderNodeBsdfDiffuse",
	"DIFFUSE_BSDF":          "ShaderNodeBsdfDiffuse",
	"EMISSION":              "ShaderNodeEmission",
	"BACKGROUND":            "ShaderNodeBackground",
	"HOLDOUT":               "ShaderNodeHoldout",
	"VOLUME_INFO":           "ShaderNodeVolumeInfo",
	"ATTRIBUTE":             "ShaderNodeAttribute",
	"BEVEL":                 "ShaderNodeBevel",
	"AMBIENT_OCCLUSION":     "ShaderNodeAmbientOcclusion",
	"WIREFRAME":             "ShaderNodeWireframe",
	"WAVELENGTH":            "ShaderNodeWavelength",
	"BLACKBODY":             "ShaderNodeBlackbody",
	"UV_MAP":                "ShaderNodeUVMap",
	"UVMAP":                 "ShaderNodeUVMap",
	"VERTEX_COLOR":          "ShaderNodeVertexColor",
	"GROUP":                 "ShaderNodeGroup",
	"GROUP_INPUT":           "NodeGroupInput",
	"GROUP_OUTPUT":          "NodeGroupOutput",
}

// Normalize maps a legacy upper-case type name to its current identifier.
// Identifiers that already use the "ShaderNode" or "Node" prefix, and names
// with no known mapping, are returned unchanged.
func Normalize(typ string) string {
	if strings.HasPrefix(typ, "ShaderNode") || strings.HasPrefix(typ, "Node") {
		return typ
	}
	if t, ok := legacyTypes[typ]; ok {
		return t
	}
	return typ
}

// IsLegacy reports whether typ is a legacy identifier with a known mapping.
func IsLegacy(typ string) bool {
	_, ok := legacyTypes[typ]
	return ok
}
