package entities

// 记录开始名称 (组码 0)
const (
	TokenAttribute           = "ATTRIB"
	TokenAttributeDefinition = "ATTDEF"
	TokenArc                 = "ARC"
	TokenBlock               = "BLOCK"
	TokenBlockEnd            = "ENDBLK"
	TokenCircle              = "CIRCLE"
	TokenDimension           = "DIMENSION"
	Token3DFace              = "3DFACE"
	TokenEllipse             = "ELLIPSE"
	TokenLine                = "LINE"
	TokenLwPolyline          = "LWPOLYLINE"
	TokenHatch               = "HATCH"
	TokenInsert              = "INSERT"
	TokenMText               = "MTEXT"
	TokenMLine               = "MLINE"
	TokenPoint               = "POINT"
	TokenPolyline            = "POLYLINE"
	TokenRay                 = "RAY"
	TokenSeqend              = "SEQEND"
	TokenSolid               = "SOLID"
	TokenText                = "TEXT"
	TokenVertex              = "VERTEX"
	TokenViewport            = "VIEWPORT"
	TokenXLine               = "XLINE"
	TokenSpline              = "SPLINE"

	TokenTable     = "TABLE"
	TokenEndTable  = "ENDTAB"
	TokenLayer     = "LAYER"
	TokenTextStyle = "STYLE"
	TokenDimStyle  = "DIMSTYLE"
)

// 子类标记 (组码 100)
const (
	SubclassEntity                 = "AcDbEntity"
	SubclassLine                   = "AcDbLine"
	SubclassCircle                 = "AcDbCircle"
	SubclassArc                    = "AcDbArc"
	SubclassEllipse                = "AcDbEllipse"
	SubclassPoint                  = "AcDbPoint"
	SubclassFace3D                 = "AcDbFace"
	SubclassTrace                  = "AcDbTrace"
	SubclassRay                    = "AcDbRay"
	SubclassXLine                  = "AcDbXline"
	SubclassText                   = "AcDbText"
	SubclassAttribute              = "AcDbAttribute"
	SubclassAttributeDefinition    = "AcDbAttributeDefinition"
	SubclassMText                  = "AcDbMText"
	SubclassDimension              = "AcDbDimension"
	SubclassAlignedDimension       = "AcDbAlignedDimension"
	SubclassLinearDimension        = "AcDbRotatedDimension"
	SubclassRadialDimension        = "AcDbRadialDimension"
	SubclassDiametricDimension     = "AcDbDiametricDimension"
	SubclassAngular3PointDimension = "AcDb3PointAngularDimension"
	SubclassAngular2LineDimension  = "AcDb2LineAngularDimension"
	SubclassOrdinateDimension      = "AcDbOrdinateDimension"
	SubclassInsert                 = "AcDbBlockReference"
	SubclassHatch                  = "AcDbHatch"
	SubclassLwPolyline             = "AcDbPolyline"
	SubclassMLine                  = "AcDbMline"
	SubclassPolyline               = "AcDb2dPolyline"
	SubclassPolyline3D             = "AcDb3dPolyline"
	SubclassPolyfaceMesh           = "AcDbPolyFaceMesh"
	SubclassPolygonMesh            = "AcDbPolygonMesh"
	SubclassVertex                 = "AcDbVertex"
	SubclassPolylineVertex         = "AcDb2dVertex"
	SubclassPolyline3DVertex       = "AcDb3dPolylineVertex"
	SubclassPolyfaceMeshVertex     = "AcDbPolyFaceMeshVertex"
	SubclassPolygonMeshVertex      = "AcDbPolygonMeshVertex"
	SubclassFaceRecord             = "AcDbFaceRecord"
	SubclassViewport               = "AcDbViewport"
	SubclassSpline                 = "AcDbSpline"
	SubclassBlockBegin             = "AcDbBlockBegin"
	SubclassBlockEnd               = "AcDbBlockEnd"

	SubclassSymbolTable        = "AcDbSymbolTable"
	SubclassTableRecord        = "AcDbSymbolTableRecord"
	SubclassLayerRecord        = "AcDbLayerTableRecord"
	SubclassTextStyleRecord    = "AcDbTextStyleTableRecord"
	SubclassDimStyleRecord     = "AcDbDimStyleTableRecord"
	SubclassDimStyleTable      = "AcDbDimStyleTable"
	SubclassRegisteredAppTable = "AcDbRegAppTableRecord"
)
