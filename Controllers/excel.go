package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"

	"github.com/DigesSuvagiya/meditrack-backend/Models"
)

// ExportDoctorPatients writes a doctor's patient records to an xlsx file
// and returns it.
func ExportDoctorPatients(c *gin.Context) {
	checks, err := Models.PatientChecks.FindByDoctor(c.Request.Context(), c.Param("doctorId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching patients", "error": err.Error()})
		return
	}

	headers := map[string]string{
		"A1": "Patient ID",
		"B1": "Full Name",
		"C1": "DOB",
		"D1": "Gender",
		"E1": "Phone",
		"F1": "Visit Date",
		"G1": "Diagnosis",
		"H1": "Treatment Plan",
		"I1": "Follow Up",
	}
	file := excelize.NewFile()
	sheet := "Patients"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(checks); i++ {
		appendRowPatient(sheet, file, i, checks)
	}

	filename := "./Patients.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowPatient(sheet string, file *excelize.File, index int, rows []Models.PatientCheck) *excelize.File {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].PatientID)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Fullname)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), rows[index].DOB)
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Gender)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Phone)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].VisitDate)
	file.SetCellValue(sheet, fmt.Sprintf("G%v", rowCount), rows[index].Diagnosis)
	file.SetCellValue(sheet, fmt.Sprintf("H%v", rowCount), rows[index].TreatmentPlan)
	file.SetCellValue(sheet, fmt.Sprintf("I%v", rowCount), rows[index].FollowUpAppointment)
	return file
}
