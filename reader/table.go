package reader

import (
	"github.com/zooyer/dxfreader/core"
	"github.com/zooyer/dxfreader/dxfmap"
	"github.com/zooyer/dxfreader/entities"
	"github.com/zooyer/dxfreader/notify"
	"github.com/zooyer/dxfreader/templates"
)

// ReadTable 读取符号表头 (0 TABLE)，结束时游标位于第一条表记录或 ENDTAB 上
func (r *Reader) ReadTable() (*templates.TableTemplate, error) {
	if err := r.atRecord(); err != nil {
		return nil, err
	}

	position := r.cursor.Position()
	data := r.readCommonData()
	if !data.found {
		r.resync()
		return nil, r.missingHandle(entities.TokenTable+" "+data.name, position)
	}

	table := templates.NewTableTemplate(data.name, data.handle)
	table.OwnerHandle = data.owner
	table.XDictHandle = data.xdict
	table.ReactorHandles = data.reactors

	for r.cursor.Code() == core.CodeSubclass {
		r.cursor.ReadNext()

		for r.cursor.Code() != core.CodeStart && r.cursor.Code() != core.CodeSubclass {
			switch code := r.cursor.Code(); code {
			case 70:
				table.Count = r.cursor.ValueAsInt()
			case 71, 340:
				// 标注样式表头中的数量和样式句柄
			case core.CodeControlString:
				xdict, reactors := r.readDefinedGroups()
				if xdict != nil {
					table.XDictHandle = xdict
				}
				table.ReactorHandles = append(table.ReactorHandles, reactors...)
				continue
			case core.CodeExtendedDataRegApp:
				r.readExtendedData(table.SetExtendedData)
				continue
			default:
				r.notify(notify.None, nil, "[%s] unhandled table code %d with value %s", table.Name, code, r.cursor.ValueAsString())
			}

			r.cursor.ReadNext()
		}
	}

	return table, nil
}

// ReadTableEntry 读取一条表记录，不支持的记录返回 nil, nil 并跳过
func (r *Reader) ReadTableEntry() (*templates.TableEntryTemplate, error) {
	if err := r.atRecord(); err != nil {
		return nil, err
	}

	name := r.cursor.ValueAsString()
	record := entities.CreateTableEntry(name)
	if record == nil {
		r.notify(notify.NotImplemented, nil, "table entry not implemented: %s", name)
		r.skipRecord()
		return nil, nil
	}

	tpl := templates.NewTableEntryTemplate(record)
	position := r.cursor.Position()
	r.cursor.ReadNext()

	r.readCommonObjectData(tpl)
	if tpl.Handle() == 0 {
		r.resync()
		return nil, r.missingHandle(name, position)
	}

	m := dxfmap.For(record)
	for r.cursor.Code() == core.CodeSubclass {
		marker := r.cursor.ValueAsString()
		if _, ok := m.Class(marker); !ok {
			r.notify(notify.Warning, nil, "[%s] unhandled dxf table entry subclass %s", name, marker)
			r.cursor.ReadNext()
			r.resync()
			break
		}

		if err := r.readMapped(tpl, marker); err != nil {
			return nil, err
		}
	}

	return tpl, nil
}
