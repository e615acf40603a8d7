package relsql

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"ariga.io/atlas/sql/schema"
	"github.com/pkg/errors"
	"github.com/zoobzio/dbml"

	"github.com/zoobzio/relsql/internal/types"
)

// Catalog errors.
var (
	ErrUnknownTable  = errors.New("table not found in catalog")
	ErrUnknownColumn = errors.New("column not found in catalog")
)

// ColumnDef declares one column of a catalog table.
type ColumnDef struct {
	Name     string
	DataType string
	// ValueType overrides the type inferred from DataType.
	ValueType Type
}

// Def declares a column whose value type is inferred from dataType.
func Def(name, dataType string) ColumnDef {
	return ColumnDef{Name: name, DataType: dataType}
}

type catalogColumn struct {
	meta types.ColumnMeta
	typ  Type
}

// Catalog is the schema metadata provider. It records the data type and
// maximum length of every column and stamps them onto the columns it
// creates, mirroring the tables into a dbml project.
type Catalog struct {
	project *dbml.Project
	tables  map[string]map[string]catalogColumn
	mu      sync.RWMutex
}

// NewCatalog creates an empty catalog.
func NewCatalog(name string) *Catalog {
	return &Catalog{
		project: dbml.NewProject(name),
		tables:  make(map[string]map[string]catalogColumn),
	}
}

// Project returns the dbml project mirroring the catalog.
func (c *Catalog) Project() *dbml.Project {
	return c.project
}

// NewCatalogFromDBML creates a catalog holding the tables of a dbml
// project. The project becomes the catalog's mirror.
func NewCatalogFromDBML(project *dbml.Project) (*Catalog, error) {
	if project == nil {
		return nil, errors.New("dbml: project cannot be nil")
	}
	c := &Catalog{
		project: project,
		tables:  make(map[string]map[string]catalogColumn),
	}
	for _, table := range project.Tables {
		if table.Name == "" {
			return nil, errors.New("dbml: table name cannot be empty")
		}
		if _, ok := c.tables[table.Name]; ok {
			return nil, errors.Errorf("dbml %s: table defined twice", table.Name)
		}
		cols := make([]ColumnDef, 0, len(table.Columns))
		for _, col := range table.Columns {
			cols = append(cols, Def(col.Name, col.Type))
		}
		index, err := indexColumns(table.Name, cols)
		if err != nil {
			return nil, errors.Wrap(err, "dbml")
		}
		c.tables[table.Name] = index
	}
	return c, nil
}

// Define adds a table. Defining a table twice is an error.
func (c *Catalog) Define(table string, cols ...ColumnDef) error {
	if table == "" {
		return errors.New("define: table name cannot be empty")
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[table]; ok {
		return errors.Errorf("define %s: table already defined", table)
	}
	index, err := indexColumns(table, cols)
	if err != nil {
		return errors.Wrap(err, "define")
	}

	mirror := dbml.NewTable(table)
	for _, col := range cols {
		mirror.AddColumn(dbml.NewColumn(col.Name, col.DataType))
	}
	c.tables[table] = index
	c.project.AddTable(mirror)
	return nil
}

func indexColumns(table string, cols []ColumnDef) (map[string]catalogColumn, error) {
	index := make(map[string]catalogColumn, len(cols))
	for _, col := range cols {
		if !isValidSQLIdentifier(col.Name) {
			return nil, errors.Errorf("%s: invalid column name %q", table, col.Name)
		}
		if _, ok := index[col.Name]; ok {
			return nil, errors.Errorf("%s: duplicate column %q", table, col.Name)
		}
		base, length := ParseDataType(col.DataType)
		typ := col.ValueType
		if typ == types.TypeUnknown {
			typ = ValueTypeOf(base, length)
		}
		index[col.Name] = catalogColumn{meta: types.ColumnMeta{DataType: base, MaxLength: length}, typ: typ}
	}
	return index, nil
}

// DefineAtlas adds a table described by an atlas schema table, such as
// one returned by inspecting a live database.
func (c *Catalog) DefineAtlas(t *schema.Table) error {
	if t == nil {
		return errors.New("define: nil atlas table")
	}
	name := t.Name
	if t.Schema != nil && t.Schema.Name != "" {
		name = t.Schema.Name + "." + t.Name
	}
	cols := make([]ColumnDef, 0, len(t.Columns))
	for _, col := range t.Columns {
		cols = append(cols, ColumnDef{Name: col.Name, DataType: atlasDataType(col)})
	}
	return errors.Wrap(c.Define(name, cols...), "atlas")
}

// atlasDataType renders an atlas column type as a data type string with
// its length, e.g. varchar(36).
func atlasDataType(col *schema.Column) string {
	if col.Type == nil {
		return ""
	}
	size := 0
	var name string
	switch t := col.Type.Type.(type) {
	case *schema.StringType:
		name, size = t.T, t.Size
	case *schema.BinaryType:
		name = t.T
		if t.Size != nil {
			size = *t.Size
		}
	case *schema.IntegerType:
		name = t.T
	case *schema.DecimalType:
		name = t.T
	case *schema.FloatType:
		name = t.T
	case *schema.BoolType:
		name = t.T
	case *schema.TimeType:
		name = t.T
	case *schema.UUIDType:
		name = t.T
	default:
		name = col.Type.Raw
	}
	if size > 0 && !strings.Contains(name, "(") {
		return name + "(" + strconv.Itoa(size) + ")"
	}
	return name
}

// Tables returns the defined table names in sorted order.
func (c *Catalog) Tables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the metadata and value type of a column.
func (c *Catalog) Lookup(table, column string) (ColumnMeta, Type, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	col, ok := c.tables[table][column]
	return col.meta, col.typ, ok
}

// TryT creates a table source for a defined table.
func (c *Catalog) TryT(name string, alias ...string) (*Table, error) {
	c.mu.RLock()
	_, ok := c.tables[name]
	c.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTable, "table %q", name)
	}
	return TryT(name, alias...)
}

// T creates a table source for a defined table, panicking if it is not.
func (c *Catalog) T(name string, alias ...string) *Table {
	t, err := c.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryC creates a column of table, typed and carrying its metadata.
func (c *Catalog) TryC(table *Table, column string) (*Column, error) {
	if table == nil {
		return nil, errors.New("column: nil table")
	}
	meta, typ, ok := c.Lookup(table.Name, column)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColumn, "column %q of %q", column, table.Name)
	}
	return &types.Column{Alias: table.Alias, Name: column, ValueType: typ, Meta: &meta}, nil
}

// C creates a column of table, panicking if it is not defined.
func (c *Catalog) C(table *Table, column string) *Column {
	col, err := c.TryC(table, column)
	if err != nil {
		panic(err)
	}
	return col
}

// ParseDataType splits a data type such as "VARCHAR2(36 CHAR)" into its
// base name and length. Types without a numeric length report 0.
func ParseDataType(s string) (string, int) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, 0
	}
	base := strings.TrimSpace(s[:open])
	args := s[open+1:]
	if end := strings.IndexByte(args, ')'); end >= 0 {
		args = args[:end]
	}
	first := strings.TrimSpace(strings.SplitN(args, ",", 2)[0])
	if fields := strings.Fields(first); len(fields) > 0 {
		first = fields[0]
	}
	n, err := strconv.Atoi(first)
	if err != nil || n < 0 {
		return base, 0
	}
	return base, n
}

// ValueTypeOf infers a value type from a data type name and length.
// A 16-byte binary column holds a UUID.
func ValueTypeOf(base string, length int) Type {
	switch strings.ToLower(base) {
	case "uuid", "uniqueidentifier":
		return types.TypeUUID
	case "raw", "binary":
		if length == 16 {
			return types.TypeUUID
		}
		return types.TypeBytes
	case "blob", "bytea", "varbinary", "longblob", "long raw", "image":
		return types.TypeBytes
	case "int", "integer", "smallint", "tinyint", "mediumint", "int2", "int4", "serial":
		return types.TypeInt
	case "bigint", "int8", "bigserial":
		return types.TypeInt64
	case "number", "numeric", "decimal", "money", "smallmoney":
		return types.TypeDecimal
	case "float", "double", "real", "double precision", "float4", "float8", "binary_float", "binary_double":
		return types.TypeFloat
	case "bool", "boolean", "bit":
		return types.TypeBool
	case "date", "datetime", "datetime2", "smalldatetime", "timestamp", "timestamptz", "time",
		"timestamp with time zone", "timestamp without time zone", "datetimeoffset":
		return types.TypeTime
	case "text", "varchar", "char", "nvarchar", "nchar", "varchar2", "nvarchar2", "clob", "nclob",
		"character varying", "character", "string", "tinytext", "mediumtext", "longtext", "ntext":
		return types.TypeString
	}
	return types.TypeUnknown
}
