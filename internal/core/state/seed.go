package state

import (
	"time"

	"opscore/internal/core/entity"
	"opscore/internal/core/types"
)

// seedTime is the fixed business date baked into the seed snapshot.
var seedTime = time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC)

// Seed returns the fixed initial dataset. Ids are baked literals: Reset must
// restore them exactly, never regenerate them.
func Seed() Snapshot {
	releasedAt := seedTime.Add(30 * time.Minute)

	return Snapshot{
		Inventory: InventoryState{
			Items: []entity.Item{
				{ID: "itm-1918c0de01-0001", SKU: "RM-STEEL", Name: "Steel Sheet 3mm", UOM: "kg", Type: entity.ItemTypeRaw, UnitCost: types.MustQty("4.20")},
				{ID: "itm-1918c0de01-0002", SKU: "RM-BRG", Name: "Bearing Kit 6204", UOM: "pcs", Type: entity.ItemTypeRaw, UnitCost: types.MustQty("12.50")},
				{ID: "itm-1918c0de01-0003", SKU: "SA-SHAFT", Name: "Drive Shaft Subassembly", UOM: "pcs", Type: entity.ItemTypeSubassembly, UnitCost: types.MustQty("86.00")},
				{ID: "itm-1918c0de01-0004", SKU: "FG-DRV", Name: "Conveyor Drive Unit", UOM: "pcs", Type: entity.ItemTypeFinished, UnitCost: types.MustQty("480.00")},
			},
			Boms: []entity.Bom{
				{
					ID:     "bom-1918c0de01-0001",
					ItemID: "itm-1918c0de01-0004",
					Lines: []entity.BomLine{
						{ComponentItemID: "itm-1918c0de01-0001", Qty: types.MustQty("8")},
						{ComponentItemID: "itm-1918c0de01-0002", Qty: types.MustQty("2")},
					},
				},
			},
			Warehouses: []entity.Warehouse{
				{
					ID:   "wh-1918c0de01-0001",
					Code: "WH-MAIN",
					Name: "Main Plant Warehouse",
					RoleLocations: map[entity.LocationRole]string{
						entity.RoleRaw: "loc-1918c0de01-0001",
						entity.RoleWip: "loc-1918c0de01-0002",
						entity.RoleFg:  "loc-1918c0de01-0003",
					},
				},
			},
			Locations: []entity.Location{
				{ID: "loc-1918c0de01-0001", WarehouseID: "wh-1918c0de01-0001", Path: "WH-MAIN/RAW"},
				{ID: "loc-1918c0de01-0002", WarehouseID: "wh-1918c0de01-0001", Path: "WH-MAIN/WIP"},
				{ID: "loc-1918c0de01-0003", WarehouseID: "wh-1918c0de01-0001", Path: "WH-MAIN/FG"},
			},
			StockLots: []entity.StockLot{
				{ID: "lot-1918c0de01-0001", ItemID: "itm-1918c0de01-0001", LocationID: "loc-1918c0de01-0001", LotNo: "LOT-2025-0001", Qty: types.MustQty("500"), Status: entity.LotStatusAvailable},
				{ID: "lot-1918c0de01-0002", ItemID: "itm-1918c0de01-0002", LocationID: "loc-1918c0de01-0001", LotNo: "LOT-2025-0002", Qty: types.MustQty("120"), Status: entity.LotStatusAvailable},
			},
			StockMoves: []entity.StockMove{
				{
					ID:           "mv-1918c0de01-0001",
					ItemID:       "itm-1918c0de01-0001",
					Qty:          types.MustQty("500"),
					ToLocationID: "loc-1918c0de01-0001",
					RefType:      entity.RefTypePurchaseOrder,
					RefID:        "po-1918c0de01-0001",
					Note:         "Receipt",
					CreatedAt:    seedTime,
				},
			},
		},
		MES: MESState{
			WorkCenters: []entity.WorkCenter{
				{ID: "wc-1918c0de01-0001", Code: "WC-CUT", Name: "CNC Cutting Cell"},
				{ID: "wc-1918c0de01-0002", Code: "WC-ASM", Name: "Assembly Bay 1"},
			},
			Routings: []entity.Routing{
				{
					ID:     "rt-1918c0de01-0001",
					ItemID: "itm-1918c0de01-0004",
					Operations: []entity.OperationStep{
						{OpID: "op-1918c0de01-0001", Seq: 10, WorkCenterID: "wc-1918c0de01-0001", StdMinutes: 45},
						{OpID: "op-1918c0de01-0002", Seq: 20, WorkCenterID: "wc-1918c0de01-0002", StdMinutes: 90},
					},
				},
			},
			ProductionOrders: []entity.ProductionOrder{
				{
					ID:         "prd-1918c0de01-0001",
					ItemID:     "itm-1918c0de01-0004",
					Qty:        types.MustQty("5"),
					DueDate:    seedTime.AddDate(0, 0, 14),
					Status:     entity.ProductionOrderReleased,
					ReleasedAt: &releasedAt,
				},
			},
			WorkOrders:      []entity.WorkOrder{},
			QualityChecks:   []entity.QualityCheck{},
			Nonconformances: []entity.Nonconformance{},
			MaintenanceOrders: []entity.MaintenanceOrder{
				{
					ID:           "mnt-1918c0de01-0001",
					WorkCenterID: "wc-1918c0de01-0001",
					Description:  "Spindle lubrication service",
					Status:       "open",
					DueDate:      seedTime.AddDate(0, 0, 7),
					Log: []entity.MaintenanceLogEntry{
						{At: seedTime, Entry: "Scheduled by planner"},
					},
				},
			},
		},
		ERP: ERPState{
			Suppliers: []entity.Supplier{
				{ID: "sup-1918c0de01-0001", Code: "SUP-001", Name: "Baltic Steel OY", Contact: "orders@balticsteel.example"},
			},
			Customers: []entity.Customer{
				{ID: "cus-1918c0de01-0001", Code: "CUS-001", Name: "Nordfab AB", Contact: "purchasing@nordfab.example"},
			},
			PurchaseOrders: []entity.PurchaseOrder{
				{
					ID:         "po-1918c0de01-0001",
					SupplierID: "sup-1918c0de01-0001",
					Lines: []entity.OrderLine{
						{ItemID: "itm-1918c0de01-0001", Qty: types.MustQty("200"), Price: types.MustQty("4.05")},
					},
					Status:    entity.PurchaseOrderApproved,
					CreatedAt: seedTime,
				},
			},
			SalesOrders: []entity.SalesOrder{
				{
					ID:         "so-1918c0de01-0001",
					CustomerID: "cus-1918c0de01-0001",
					Lines: []entity.OrderLine{
						{ItemID: "itm-1918c0de01-0004", Qty: types.MustQty("2"), Price: types.MustQty("640.00")},
					},
					Status:    entity.SalesOrderApproved,
					CreatedAt: seedTime,
				},
			},
			Invoices: []entity.Invoice{},
		},
		Tasks: TasksState{
			Tasks: []entity.Task{
				{ID: "tsk-1918c0de01-0001", Title: "Verify cycle count for RAW", Status: "todo", Assignee: "m.keller", Priority: "medium", CreatedAt: seedTime},
				{ID: "tsk-1918c0de01-0002", Title: "Review supplier lead times", Status: "backlog", Priority: "low", CreatedAt: seedTime},
			},
		},
		Passports: PassportState{
			Passports: []entity.ProductPassport{
				{
					ID:       "pp-1918c0de01-0001",
					SerialNo: "DRV-2025-00017",
					ItemID:   "itm-1918c0de01-0004",
					BatchNo:  "B-2025-44",
					IssuedAt: seedTime,
					Events: []entity.PassportEvent{
						{At: seedTime, Kind: "issued", Note: "Passport opened at final assembly"},
					},
				},
			},
		},
		Automation: AutomationState{
			Templates: []entity.PlaybookTemplate{
				{
					ID:          "tpl-1918c0de01-0001",
					Name:        "Low stock reorder",
					Description: "Raise a draft purchase order when a raw lot falls below minimum",
					Steps:       []string{"scan-lots", "compare-minimums", "draft-purchase-order"},
				},
			},
			Playbooks: []entity.Playbook{
				{ID: "pb-1918c0de01-0001", TemplateID: "tpl-1918c0de01-0001", Name: "Reorder steel", Enabled: true},
			},
			Runs: []entity.PlaybookRun{},
		},
		Workforce: WorkforceState{
			Employees: []entity.Employee{
				{ID: "emp-1918c0de01-0001", Name: "Marta Keller", Role: "operator", Active: true},
				{ID: "emp-1918c0de01-0002", Name: "Jonas Lind", Role: "supervisor", Active: true},
			},
			Shifts: []entity.Shift{
				{ID: "shf-1918c0de01-0001", EmployeeID: "emp-1918c0de01-0001", StartsAt: seedTime.Add(-2 * time.Hour), EndsAt: seedTime.Add(6 * time.Hour)},
			},
		},
	}
}
