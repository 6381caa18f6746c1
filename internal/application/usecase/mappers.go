package usecase

import (
	"github.com/hraei-ti/inventario-api/internal/application/dto"
	"github.com/hraei-ti/inventario-api/internal/domain/entity"
)

func toLocationResponse(l *entity.Location) dto.LocationResponse {
	return dto.LocationResponse{
		ID:               l.ID,
		Building:         l.Building,
		Floor:            l.Floor,
		ServiceArea:      l.ServiceArea,
		InternalLocation: l.InternalLocation,
		Description:      l.Description,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

func toEquipmentResponse(p *entity.PopulatedEquipment) dto.EquipmentResponse {
	resp := dto.EquipmentResponse{
		ID:                p.ID,
		DisplayID:         p.DisplayID,
		TypeName:          p.TypeName,
		Brand:             p.Brand,
		Model:             p.Model,
		SerialNumber:      p.SerialNumber,
		StatusName:        p.StatusName,
		Location:          toLocationResponse(&p.Location),
		AssignedStationID: p.AssignedStationID,
		EstimatedValue:    p.EstimatedValue,
		PurchaseDate:      p.PurchaseDate,
		WarrantyEndDate:   p.WarrantyEndDate,
		Notes:             p.Notes,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Responsible != nil {
		resp.ResponsibleName = p.Responsible.FullName
	}
	if p.Printer != nil {
		resp.Printer = &dto.PrinterDetailsResponse{
			Profile:     p.Printer.Profile,
			PrinterType: p.Printer.PrinterType,
		}
	}
	return resp
}

func toStationResponse(p *entity.PopulatedStation) dto.StationResponse {
	return dto.StationResponse{
		ID:              p.ID,
		DisplayID:       p.DisplayID,
		Name:            p.Name,
		CPU:             toEquipmentResponse(&p.CPU),
		Monitor:         toEquipmentResponse(&p.Monitor),
		ResponsibleName: p.Responsible.FullName,
		Location:        toLocationResponse(&p.Location),
		StatusName:      p.StatusName,
		Accessories:     p.Accessories,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toResponsableResponse(r *entity.Responsable) dto.ResponsableResponse {
	return dto.ResponsableResponse{
		ID:        r.ID,
		FullName:  r.FullName,
		Phone:     r.Phone,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDepartmentResponse(d *entity.AdministrativeDepartment) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func toResguardoResponse(r *entity.Resguardo) dto.ResguardoResponse {
	return dto.ResguardoResponse{
		ID:            r.ID,
		EquipmentID:   r.EquipmentID,
		StationID:     r.StationID,
		ResguardoType: r.ResguardoType,
		GeneratedByID: r.GeneratedByID,
		IsSigned:      r.IsSigned,
		DocumentURL:   r.DocumentURL,
		CreatedAt:     r.CreatedAt,
	}
}

func toMovementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:            m.ID,
		UserID:        m.UserID,
		Timestamp:     m.Timestamp,
		MovementType:  m.MovementType,
		Description:   m.Description,
		EquipmentID:   m.EquipmentID,
		StationID:     m.StationID,
		ResponsibleID: m.ResponsibleID,
		LocationID:    m.LocationID,
		ResguardoID:   m.ResguardoID,
	}
}
