package schema

import "github.com/meshwerk/ifcgraph/pkg/model"

const (
	scalar  = model.AttrScalar
	ref     = model.AttrEntityRef
	list    = model.AttrEntityList
	derived = model.AttrDerived
)

// IFC returns the built-in IFC2x3 core subset: the project and spatial
// structure, common building elements, ownership records, property sets and
// the relationship objects that tie them together. Scalar aggregates (e.g.
// point coordinates) are declared as scalar attributes and carried as text.
//
// The subset covers what typical wall/slab/storey exports from authoring
// tools contain; unknown record types in a file are rejected by the parser
// rather than silently dropped.
func IFC() *Schema {
	s, err := New(ifcTypes)
	if err != nil {
		// The table below is static; a failure here is a programming error.
		panic(err)
	}
	return s
}

var ifcTypes = []TypeDef{
	// Root hierarchy.
	{Name: "IfcRoot", Attributes: []AttributeDef{
		{"GlobalId", scalar}, {"OwnerHistory", ref}, {"Name", scalar}, {"Description", scalar},
	}},
	{Name: "IfcObjectDefinition", Supertype: "IfcRoot", Inverses: []InverseDef{
		{Name: "IsDecomposedBy", SourceType: "IfcRelAggregates", SourceAttribute: "RelatingObject"},
		{Name: "Decomposes", SourceType: "IfcRelAggregates", SourceAttribute: "RelatedObjects"},
	}},
	{Name: "IfcObject", Supertype: "IfcObjectDefinition",
		Attributes: []AttributeDef{{"ObjectType", scalar}},
		Inverses: []InverseDef{
			{Name: "IsDefinedBy", SourceType: "IfcRelDefinesByProperties", SourceAttribute: "RelatedObjects"},
		}},
	{Name: "IfcProduct", Supertype: "IfcObject", Attributes: []AttributeDef{
		{"ObjectPlacement", ref}, {"Representation", ref},
	}},

	// Spatial structure.
	{Name: "IfcSpatialStructureElement", Supertype: "IfcProduct",
		Attributes: []AttributeDef{{"LongName", scalar}, {"CompositionType", scalar}},
		Inverses: []InverseDef{
			{Name: "ContainsElements", SourceType: "IfcRelContainedInSpatialStructure", SourceAttribute: "RelatingStructure"},
		}},
	{Name: "IfcProject", Supertype: "IfcObject", Attributes: []AttributeDef{
		{"LongName", scalar}, {"Phase", scalar}, {"RepresentationContexts", list}, {"UnitsInContext", ref},
	}},
	{Name: "IfcSite", Supertype: "IfcSpatialStructureElement", Attributes: []AttributeDef{
		{"RefLatitude", scalar}, {"RefLongitude", scalar}, {"RefElevation", scalar}, {"LandTitleNumber", scalar}, {"SiteAddress", ref},
	}},
	{Name: "IfcBuilding", Supertype: "IfcSpatialStructureElement", Attributes: []AttributeDef{
		{"ElevationOfRefHeight", scalar}, {"ElevationOfTerrain", scalar}, {"BuildingAddress", ref},
	}},
	{Name: "IfcBuildingStorey", Supertype: "IfcSpatialStructureElement", Attributes: []AttributeDef{
		{"Elevation", scalar},
	}},

	// Building elements.
	{Name: "IfcElement", Supertype: "IfcProduct",
		Attributes: []AttributeDef{{"Tag", scalar}},
		Inverses: []InverseDef{
			{Name: "ContainedInStructure", SourceType: "IfcRelContainedInSpatialStructure", SourceAttribute: "RelatedElements"},
		}},
	{Name: "IfcBuildingElement", Supertype: "IfcElement"},
	{Name: "IfcWall", Supertype: "IfcBuildingElement"},
	{Name: "IfcWallStandardCase", Supertype: "IfcWall"},
	{Name: "IfcSlab", Supertype: "IfcBuildingElement", Attributes: []AttributeDef{
		{"PredefinedType", scalar},
	}},
	{Name: "IfcColumn", Supertype: "IfcBuildingElement"},
	{Name: "IfcBeam", Supertype: "IfcBuildingElement"},
	{Name: "IfcDoor", Supertype: "IfcBuildingElement", Attributes: []AttributeDef{
		{"OverallHeight", scalar}, {"OverallWidth", scalar},
	}},
	{Name: "IfcWindow", Supertype: "IfcBuildingElement", Attributes: []AttributeDef{
		{"OverallHeight", scalar}, {"OverallWidth", scalar},
	}},

	// Ownership records.
	{Name: "IfcOwnerHistory", Attributes: []AttributeDef{
		{"OwningUser", ref}, {"OwningApplication", ref}, {"State", scalar}, {"ChangeAction", scalar},
		{"LastModifiedDate", scalar}, {"LastModifyingUser", ref}, {"LastModifyingApplication", ref}, {"CreationDate", scalar},
	}},
	{Name: "IfcPerson", Attributes: []AttributeDef{
		{"Identification", scalar}, {"FamilyName", scalar}, {"GivenName", scalar},
		{"MiddleNames", scalar}, {"PrefixTitles", scalar}, {"SuffixTitles", scalar},
		{"Roles", list}, {"Addresses", list},
	}},
	{Name: "IfcOrganization", Attributes: []AttributeDef{
		{"Identification", scalar}, {"Name", scalar}, {"Description", scalar},
		{"Roles", list}, {"Addresses", list},
	}},
	{Name: "IfcPersonAndOrganization", Attributes: []AttributeDef{
		{"ThePerson", ref}, {"TheOrganization", ref}, {"Roles", list},
	}},
	{Name: "IfcApplication", Attributes: []AttributeDef{
		{"ApplicationDeveloper", ref}, {"Version", scalar}, {"ApplicationFullName", scalar}, {"ApplicationIdentifier", scalar},
	}},
	{Name: "IfcPostalAddress", Attributes: []AttributeDef{
		{"Purpose", scalar}, {"Description", scalar}, {"UserDefinedPurpose", scalar},
		{"InternalLocation", scalar}, {"AddressLines", scalar}, {"PostalBox", scalar},
		{"Town", scalar}, {"Region", scalar}, {"PostalCode", scalar}, {"Country", scalar},
	}},

	// Relationship objects.
	{Name: "IfcRelationship", Supertype: "IfcRoot"},
	{Name: "IfcRelDecomposes", Supertype: "IfcRelationship"},
	{Name: "IfcRelAggregates", Supertype: "IfcRelDecomposes", Attributes: []AttributeDef{
		{"RelatingObject", ref}, {"RelatedObjects", list},
	}},
	{Name: "IfcRelConnects", Supertype: "IfcRelationship"},
	{Name: "IfcRelContainedInSpatialStructure", Supertype: "IfcRelConnects", Attributes: []AttributeDef{
		{"RelatedElements", list}, {"RelatingStructure", ref},
	}},
	{Name: "IfcRelDefines", Supertype: "IfcRelationship"},
	{Name: "IfcRelDefinesByProperties", Supertype: "IfcRelDefines", Attributes: []AttributeDef{
		{"RelatedObjects", list}, {"RelatingPropertyDefinition", ref},
	}},

	// Property sets.
	{Name: "IfcPropertySetDefinition", Supertype: "IfcRoot", Inverses: []InverseDef{
		{Name: "DefinesOccurrence", SourceType: "IfcRelDefinesByProperties", SourceAttribute: "RelatingPropertyDefinition"},
	}},
	{Name: "IfcPropertySet", Supertype: "IfcPropertySetDefinition", Attributes: []AttributeDef{
		{"HasProperties", list},
	}},
	{Name: "IfcProperty", Attributes: []AttributeDef{
		{"Name", scalar}, {"Description", scalar},
	}},
	{Name: "IfcPropertySingleValue", Supertype: "IfcProperty", Attributes: []AttributeDef{
		{"NominalValue", scalar}, {"Unit", ref},
	}},

	// Placement and representation.
	{Name: "IfcObjectPlacement"},
	{Name: "IfcLocalPlacement", Supertype: "IfcObjectPlacement", Attributes: []AttributeDef{
		{"PlacementRelTo", ref}, {"RelativePlacement", ref},
	}},
	{Name: "IfcPlacement", Attributes: []AttributeDef{{"Location", ref}}},
	{Name: "IfcAxis2Placement3D", Supertype: "IfcPlacement", Attributes: []AttributeDef{
		{"Axis", ref}, {"RefDirection", ref},
	}},
	{Name: "IfcCartesianPoint", Attributes: []AttributeDef{{"Coordinates", scalar}}},
	{Name: "IfcDirection", Attributes: []AttributeDef{{"DirectionRatios", scalar}}},
	{Name: "IfcProductDefinitionShape", Attributes: []AttributeDef{
		{"Name", scalar}, {"Description", scalar}, {"Representations", list},
	}},
	{Name: "IfcRepresentation", Attributes: []AttributeDef{
		{"ContextOfItems", ref}, {"RepresentationIdentifier", scalar}, {"RepresentationType", scalar}, {"Items", list},
	}},
	{Name: "IfcShapeRepresentation", Supertype: "IfcRepresentation"},
	{Name: "IfcRepresentationContext", Attributes: []AttributeDef{
		{"ContextIdentifier", scalar}, {"ContextType", scalar},
	}},
	{Name: "IfcGeometricRepresentationContext", Supertype: "IfcRepresentationContext", Attributes: []AttributeDef{
		{"CoordinateSpaceDimension", scalar}, {"Precision", scalar}, {"WorldCoordinateSystem", ref}, {"TrueNorth", ref},
	}},
	{Name: "IfcGeometricRepresentationItem"},
	{Name: "IfcExtrudedAreaSolid", Supertype: "IfcGeometricRepresentationItem", Attributes: []AttributeDef{
		{"SweptArea", ref}, {"Position", ref}, {"ExtrudedDirection", ref}, {"Depth", scalar},
	}},
	{Name: "IfcProfileDef", Attributes: []AttributeDef{
		{"ProfileType", scalar}, {"ProfileName", scalar},
	}},
	{Name: "IfcRectangleProfileDef", Supertype: "IfcProfileDef", Attributes: []AttributeDef{
		{"Position", ref}, {"XDim", scalar}, {"YDim", scalar},
	}},
	{Name: "IfcAxis2Placement2D", Supertype: "IfcPlacement", Attributes: []AttributeDef{
		{"RefDirection", ref},
	}},

	// Units.
	{Name: "IfcNamedUnit", Attributes: []AttributeDef{
		{"Dimensions", ref}, {"UnitType", scalar},
	}},
	{Name: "IfcSIUnit", Supertype: "IfcNamedUnit", Attributes: []AttributeDef{
		{"Prefix", scalar}, {"Name", scalar},
	}},
	{Name: "IfcUnitAssignment", Attributes: []AttributeDef{{"Units", list}}},
	{Name: "IfcDimensionalExponents", Attributes: []AttributeDef{
		{"LengthExponent", scalar}, {"MassExponent", scalar}, {"TimeExponent", scalar},
		{"ElectricCurrentExponent", scalar}, {"ThermodynamicTemperatureExponent", scalar},
		{"AmountOfSubstanceExponent", scalar}, {"LuminousIntensityExponent", scalar},
	}},
}
