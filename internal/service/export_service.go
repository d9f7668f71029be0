package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/JesusPaz145/nails-appointment-app/internal/model"
	"github.com/JesusPaz145/nails-appointment-app/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmpty        = errors.New("该日期范围内没有预约")
	ErrExportGenerateFail = errors.New("生成 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportAppointments 导出日期范围内的预约表为 Excel
	ExportAppointments(ctx context.Context, from, to string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportAppointments 导出预约表
//
// 输出格式：
//   - 单个 Sheet "预约表"
//   - 列：日期 | 开始 | 结束 | 客户 | 电话 | 服务 | 价格 | 状态 | 备注
//   - 按 appointment_date + start_time 升序（由 Repository 保证）
func (s *exportService) ExportAppointments(ctx context.Context, from, to string) (*bytes.Buffer, string, error) {
	appts, err := s.repo.Appointment.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("查询预约失败", zap.Error(err))
		return nil, "", err
	}
	if len(appts) == 0 {
		return nil, "", ErrExportEmpty
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "预约表"
	idx, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 设置列宽
	widths := []float64{12, 10, 10, 18, 16, 20, 10, 12, 28}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, w)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D16BA5"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	headers := []string{"日期", "开始", "结束", "客户", "电话", "服务", "价格", "状态", "备注"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	// 数据行
	row := 2
	for i := range appts {
		appt := &appts[i]

		serviceName, price := "-", 0.0
		if appt.Service != nil {
			serviceName = appt.Service.Name
			price = appt.Service.Price
		}

		f.SetCellValue(sheetName, cell("A", row), appt.Date.Format(model.DateLayout))
		f.SetCellValue(sheetName, cell("B", row), appt.StartTime)
		f.SetCellValue(sheetName, cell("C", row), appt.EndTime)
		f.SetCellValue(sheetName, cell("D", row), appt.ClientName)
		f.SetCellValue(sheetName, cell("E", row), appt.ClientPhone)
		f.SetCellValue(sheetName, cell("F", row), serviceName)
		f.SetCellValue(sheetName, cell("G", row), price)
		f.SetCellValue(sheetName, cell("H", row), appt.Status)
		f.SetCellValue(sheetName, cell("I", row), appt.Notes)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("预约表_%s_%s.xlsx", from, to)
	return buf, filename, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
