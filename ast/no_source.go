package ast

// UnknownPos is a placeholder position when only the source file
// name is known.
func UnknownPos(filename string) SourcePos {
	return SourcePos{Filename: filename}
}

// UnknownMetadata is placeholder metadata for nodes of a file whose
// source is not available, such as trees built programmatically or
// loaded from fixtures. Positions render as just the file name.
func UnknownMetadata(filename string) Metadata {
	return Metadata{
		Pos: UnknownPos(filename),
		End: UnknownPos(filename),
	}
}
