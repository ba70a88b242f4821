package code

type Shape string

const (
	ShapeStruct    Shape = "struct"
	ShapeDefined   Shape = "defined"
	ShapeInterface Shape = "interface"
	ShapePointer   Shape = "pointer"
	ShapeAlias     Shape = "alias"
)
